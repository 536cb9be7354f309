package fetch

// Package fetch implements the asynchronous artwork loader behind the UI's
// three-phase image state machine. A subscription delivers the Empty phase
// synchronously, then exactly one terminal phase (Success or Failure), with
// the terminal event marshaled onto the UI thread. Cancelled subscriptions
// deliver nothing further. There are no retries and no caching.
