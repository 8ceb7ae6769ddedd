// Package asyncq
// Author: momentics <momentics@gmail.com>
//
// FIFO message delivery from arbitrary goroutines into a reactor-driven
// goroutine, built from a ring queue and an fdsem wakeup semaphore. It
// implements the api.Waker contract.
package asyncq
