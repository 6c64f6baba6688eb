package turngraph

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

func (data *OSMDataRaw) prepareWellDone(verbose bool) error {
	err := data.prepareWaysWellDone(verbose)
	if err != nil {
		return errors.Wrap(err, "Can't preprocess ways")
	}
	return nil
}

func (data *OSMDataRaw) prepareWaysWellDone(verbose bool) error {
	if verbose {
		fmt.Printf("Cook well-done ways...")
	}
	st := time.Now()
	for _, way := range data.waysMedium {
		if way.capacity < 0 {
			if defaultCap, ok := defaultCapacityByLinkType[way.linkType]; ok {
				way.capacity = defaultCap
			}
		}
		if way.freeSpeed < 0 {
			if way.maxSpeed >= 0 {
				way.freeSpeed = way.maxSpeed
			} else {
				if defaultSpeed, ok := defaultSpeedByLinkType[way.linkType]; ok {
					way.freeSpeed = defaultSpeed
					way.maxSpeed = defaultSpeed
				}
			}
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	return nil
}
