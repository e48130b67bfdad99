// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notice collects admin notices raised while settings are resolved,
// such as the use of a deprecated constant.
package notice

import (
	"sync"

	"github.com/MKhiriev/stateless-settings/models"
)

// Collector keeps notices in insertion order, one per key.
type Collector struct {
	mu      sync.Mutex
	order   []string
	notices map[string]models.Notice
}

func NewCollector() *Collector {
	return &Collector{notices: make(map[string]models.Notice)}
}

// Add records n with level. A notice whose key is already collected
// replaces the earlier one and keeps its position.
func (c *Collector) Add(n models.Notice, level models.NoticeLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n.Level = level
	if _, ok := c.notices[n.Key]; !ok {
		c.order = append(c.order, n.Key)
	}
	c.notices[n.Key] = n
}

// All returns a copy of the collected notices.
func (c *Collector) All() []models.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Notice, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.notices[key])
	}
	return out
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.order)
}
