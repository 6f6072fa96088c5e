// Package probe issues HTTP(S) requests against target hosts and
// classifies the responses as pass or fail.
//
// # Requests
//
// A Request names the target and how to judge the response:
//
//	req := probe.Request{
//	    Method:   probe.MethodGet,
//	    Schema:   probe.SchemaHTTP,
//	    Host:     "10.0.0.12",
//	    Port:     8080,
//	    Path:     "/healthz",
//	    Criteria: probe.DefaultOK(),
//	}
//
// The URL takes the form schema://host[:port]/path; the path always
// carries exactly one leading slash. Supported schemas are http, https
// and h2c (HTTP/2 over clear text).
//
// # Success criteria
//
// Three variants exist, constructed once at the action boundary:
//
//	probe.DefaultOK()          // any 2xx
//	probe.Codes(200, 404)      // explicit status set
//	probe.ServiceUp()          // any status in [200,499]
//
// ServiceUp additionally disables redirect following, so a 3xx response
// is classified as the service answering rather than chased.
//
// # Executing and polling
//
// Executor performs exactly one attempt:
//
//	err := probe.NewExecutor().Do(ctx, req)
//
// Poller wraps a Prober in a retry loop for readiness checks. Every
// attempt runs with the fixed AttemptTimeout (2s); the loop stops on the
// first success or once the overall deadline has passed, returning the
// last observed failure:
//
//	poller := probe.NewPoller(probe.NewExecutor())
//	err := poller.Wait(ctx, req, 30*time.Second)
//
// At least one attempt is always made, even with a zero deadline.
//
// # Failures
//
// Failures are typed: *TransportError for attempts that produced no
// response and *StatusError for responses outside the accepted codes.
// Both carry the method and URL and implement errors.ExitCoder, so exit
// codes survive wrapping.
package probe
