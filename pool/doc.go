// Package pool
// Author: momentics <momentics@gmail.com>
//
// Object recycling primitives keeping allocation churn bounded on hot
// paths. The bounded LIFO free list in freelist.go backs poll item storage
// recycling in the rtpoll package.
package pool
