package main

import (
	"github.com/nstoddard/bidirectional-map/bimap"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"registry": "symbols"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel
	symbols := bimap.New[string, int]()
	symbols.Put("open", 1)
	symbols.Put("read", 2)
	symbols.Put("write", 3)
	if id, err := symbols.GetFwd("read"); err == nil {
		logger.Info("symbol read has id ", id)
	}
	if name, err := symbols.GetRev(3); err == nil {
		logger.Info("id 3 belongs to symbol ", name)
	}
	// rebinding id 2 evicts the pair ("read", 2)
	for _, e := range symbols.Put("close", 2) {
		logger.Info("rebind evicted ", e.Key, "=", e.Value)
	}
	if _, err := symbols.GetFwd("read"); err != nil {
		logger.Info("symbol read no longer registered")
	}
	if name, err := symbols.DeleteRev(1); err == nil {
		logger.Info("unregistered symbol ", name)
	}
	logger.Info("registry size ", symbols.Size())
}
