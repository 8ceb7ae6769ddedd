// Package fdsem
// Author: momentics <momentics@gmail.com>
//
// A cross-thread wakeup semaphore exposed through a pollable file
// descriptor: eventfd on Linux, a self-pipe on other unices. It implements
// the api.Waker contract so a reactor can schedule wakeups from other
// goroutines inside its blocking wait.
package fdsem
