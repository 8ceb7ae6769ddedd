// Package api
// Author: momentics <momentics@gmail.com>
//
// Cross-package contracts for the real-time poll reactor modules: the
// Waker interface every cross-thread wakeup primitive implements to become
// schedulable inside a reactor's blocking wait.
package api
