// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-parish/models"
)

const changeBuffer = 16

type changeBroadcaster struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan models.ChangeEvent
}

func NewChangeNotifier() ChangeNotifier {
	return &changeBroadcaster{subscribers: make(map[int]chan models.ChangeEvent)}
}

func (b *changeBroadcaster) Publish(ev models.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *changeBroadcaster) Subscribe() (<-chan models.ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan models.ChangeEvent, changeBuffer)
	b.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers, id)
			close(ch)
		})
	}
}
