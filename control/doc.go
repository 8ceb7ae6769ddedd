// Package control
// Author: momentics <momentics@gmail.com>
//
// Tuning configuration and debug probing for the poll reactor modules:
// YAML-loadable Config consumed by rtpoll.NewWithConfig, a hot-reload
// Store, and a DebugProbes registry for exposing internal state.
package control
