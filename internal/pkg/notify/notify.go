package notify

import (
	"github.com/gofiber/fiber/v2/log"
)

// BroadcastUserID marks a notification addressed to the operator broadcast
// channel instead of a single user.
const BroadcastUserID uint = 0

// Go runs a best-effort side effect in the background. The caller never
// waits on it and never sees its failure; errors and panics are logged under
// the task name.
func Go(task string, fn func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("[Notify] %s panicked: %v", task, r)
			}
		}()
		if err := fn(); err != nil {
			log.Errorf("[Notify] %s failed: %v", task, err)
		}
	}()
}
