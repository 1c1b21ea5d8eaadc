package pubsub

import (
	"fmt"
	"sync"
)

// Broker fans published values out to every subscriber of a topic. Payloads
// are typed; one broker carries one event type.
type Broker[T any] struct {
	mu     sync.RWMutex
	topics map[string][]*Subscriber[T]
}

func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		topics: make(map[string][]*Subscriber[T]),
	}
}

// Publish delivers data to every subscriber of topic. Delivery blocks on
// unbuffered subscribers until they drain their channel.
func (b *Broker[T]) Publish(topic string, data T) error {
	b.mu.RLock()
	subs, exists := b.topics[topic]
	b.mu.RUnlock()

	if !exists {
		return fmt.Errorf("topic[%s] does not exist", topic)
	}

	for _, sub := range subs {
		sub.signal(data)
	}

	return nil
}

func (b *Broker[T]) Subscribe(topic string, s *Subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.topics[topic] = append(b.topics[topic], s)
}

// UnSubscribe detaches s from topic and closes its channel.
func (b *Broker[T]) UnSubscribe(topic string, s *Subscriber[T]) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs, exists := b.topics[topic]
	if !exists {
		return fmt.Errorf("topic[%s] does not exist", topic)
	}

	b.topics[topic] = removeFromSlice(subs, s)
	s.close()

	return nil
}

// =====================================================================================================================

func removeFromSlice[T comparable](s []T, d T) []T {
	for i := range s {
		if s[i] == d {
			s[i] = s[len(s)-1]
			return s[:len(s)-1]
		}
	}
	return s
}
