package main

import (
	"github.com/sirupsen/logrus"

	"github.com/batchmv/batchmv/internal/rename"
)

// logObserver logs each executed step.
type logObserver struct{}

func (logObserver) Applied(index int, m rename.Mapping) error {
	logrus.WithFields(logrus.Fields{
		"step": index,
		"src":  m.Src,
		"dst":  m.Dst,
	}).Debug("renamed")
	return nil
}

func (logObserver) Reverted(index int, m rename.Mapping) error {
	logrus.WithFields(logrus.Fields{
		"step": index,
		"src":  m.Src,
		"dst":  m.Dst,
	}).Debug("reverted")
	return nil
}

// multiObserver fans a step notification out to several observers, stopping
// at the first error.
type multiObserver []rename.Observer

func (mo multiObserver) Applied(index int, m rename.Mapping) error {
	for _, o := range mo {
		if err := o.Applied(index, m); err != nil {
			return err
		}
	}
	return nil
}

func (mo multiObserver) Reverted(index int, m rename.Mapping) error {
	for _, o := range mo {
		if err := o.Reverted(index, m); err != nil {
			return err
		}
	}
	return nil
}
