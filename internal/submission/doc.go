// Package submission sends waitlist entries to the PHYA backend.
//
// The backend exposes a single public endpoint:
//
//	POST {base}/public/waitlist?tenant_domain={tenant}
//
// The request body is the JSON form of waitlist.WaitlistEntry. A 2xx answer
// carries {success, message, entry_id}; a non-2xx answer may carry {detail}.
//
// # Usage Example
//
//	client := submission.NewClient(target)
//
//	outcome, err := client.Submit(ctx, entry)
//	switch {
//	case err != nil:
//	    fmt.Println(submission.UserMessage(err, target.ContactEmail))
//	case outcome.Kind == submission.Accepted:
//	    fmt.Println("stored as", outcome.EntryID)
//	default:
//	    fmt.Println(outcome.Message)
//	}
//
// # Error Handling
//
// Failures are returned as *Error with a Kind:
//   - ErrNetwork: no response arrived (offline, DNS, refused, cancelled)
//   - ErrRejected: non-2xx status; Detail holds the server explanation, if any
//   - ErrMalformed: 2xx status with a body that could not be decoded
//
// Use IsNetworkError, IsRejected and IsMalformed to branch on them.
//
// # Delivery
//
// Every call makes exactly one HTTP request. There is no retry, no backoff and
// no client-side timeout; each request carries a fresh X-Request-ID for log
// correlation, which the backend does not use for deduplication.
package submission
