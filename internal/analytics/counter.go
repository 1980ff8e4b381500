// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"sort"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// counter is a frequency table that remembers first-seen order.
type counter struct {
	order  []string
	counts map[string]int
	labels map[string]string
}

func newCounter() *counter {
	return &counter{
		counts: make(map[string]int),
		labels: make(map[string]string),
	}
}

// add counts one occurrence of key. The label of the first occurrence is
// used for display.
func (c *counter) add(key, label string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
		c.labels[key] = label
	}
	c.counts[key]++
}

func (c *counter) len() int {
	return len(c.order)
}

func (c *counter) get(key string) int {
	return c.counts[key]
}

type rankedKey struct {
	models.RankedItem
	key string
}

// topKeys ranks keys by count descending, ties in first-seen order.
// n <= 0 returns every key.
func (c *counter) topKeys(n int) []rankedKey {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}

	out := make([]rankedKey, len(keys))
	for i, k := range keys {
		out[i] = rankedKey{
			RankedItem: models.RankedItem{Rank: i + 1, Name: c.labels[k], Count: c.counts[k]},
			key:        k,
		}
	}
	return out
}

// top returns the ranked items without their keys.
func (c *counter) top(n int) []models.RankedItem {
	ranked := c.topKeys(n)
	out := make([]models.RankedItem, len(ranked))
	for i, r := range ranked {
		out[i] = r.RankedItem
	}
	return out
}

// TopN ranks the given names by frequency, count descending with ties broken
// by first appearance. Ranks are 1-based.
func TopN(names []string, n int) []models.RankedItem {
	c := newCounter()
	for _, name := range names {
		c.add(name, name)
	}
	return c.top(n)
}
