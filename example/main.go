package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"vectorview"
)

func main() {
	size := flag.Uint("size", 5, "number of elements in the backing buffer")
	index := flag.Uint("index", 2, "element to write and read back")
	value := flag.Int("value", 42, "value written through the mutable view")
	level := flag.String("log-level", "info", "logrus level")
	flag.Parse()

	if err := setupLogging(*level); err != nil {
		fmt.Printf("invalid log level: %v\n", err)
		os.Exit(1)
	}

	if err := run(*size, *index, *value); err != nil {
		logrus.WithError(err).Error("view access failed")
		os.Exit(1)
	}
}

func run(size, index uint, value int) error {
	buf := make([]int, size)
	for i := range buf {
		buf[i] = i
	}

	m := vectorview.MutableFromSlice[int, uint](buf)
	logrus.WithFields(logrus.Fields{
		"view": m.String(),
		"size": m.Size(),
	}).Debug("mutable view created")

	p, err := m.RefAt(index)
	if err != nil {
		return err
	}
	*p = value

	ro := m.View()
	got, err := ro.At(index)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"index":  index,
		"value":  got,
		"buffer": buf[index],
	}).Info("read back through read-only view")
	return nil
}
