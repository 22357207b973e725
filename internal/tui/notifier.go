package tui

import "todo-list.com/todo-list/internal/tasklist"

// ToastNotifier forwards controller notifications to the running program.
// When the buffer is full the oldest pending toast wins and the new one is dropped.
type ToastNotifier struct {
	ch chan tasklist.Notification
}

func NewToastNotifier(size int) *ToastNotifier {
	if size <= 0 {
		size = 16
	}
	return &ToastNotifier{ch: make(chan tasklist.Notification, size)}
}

func (n *ToastNotifier) Notify(kind tasklist.Kind, message string) {
	select {
	case n.ch <- tasklist.Notification{Kind: kind, Message: message}:
	default:
	}
}

func (n *ToastNotifier) C() <-chan tasklist.Notification {
	return n.ch
}
