package svcctl

import (
	"time"

	"github.com/breeze-rmm/svcctl/internal/logging"
)

// Enumerate lists every driver and Win32 service in every state, in the order
// the Service Control Manager returns them. A failure to query any single
// service aborts the whole enumeration.
func (c *Controller) Enumerate() ([]ServiceRecord, error) {
	start := time.Now()
	records := []ServiceRecord{}

	err := withManager(c.api, managerEnumerateService, func(m handle) error {
		var resume uint32

		// Sizing pass: an empty buffer is expected to report "more data".
		needed, _, err := c.api.enumServices(m, nil, &resume)
		if err != nil && !c.api.isMoreData(err) {
			return &Error{Kind: ErrEnumerationSize, Err: err}
		}

		buf := make([]byte, needed)
		_, returned, err := c.api.enumServices(m, buf, &resume)
		if err != nil {
			return &Error{Kind: ErrEnumerationRead, Err: err}
		}

		for _, rec := range c.api.decodeRecords(buf, returned) {
			name := orUnknown(rec.Name)
			snap, err := c.Query(name)
			if err != nil {
				return err
			}
			records = append(records, ServiceRecord{
				Name:        name,
				DisplayName: orUnknown(rec.DisplayName),
				Status:      snap.State,
				ServiceType: snap.TypeLabel,
				CanInteract: snap.CanInteract,
			})
		}
		return nil
	})
	if err != nil {
		log.Debug("service enumeration failed", logging.KeyError, err)
		return nil, err
	}

	log.Debug("services enumerated", "count", len(records), logging.KeyDurationMs, time.Since(start).Milliseconds())
	return records, nil
}

func orUnknown(s string) string {
	if s == "" {
		return unknownName
	}
	return s
}
