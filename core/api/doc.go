// Package api defines the response envelope shared by every HTTP route.
//
// Successful and failed calls use the same shape:
//
//	{"id": "...", "ver": "v2", "ts": "...", "params": {"resmsgid": "...", "status": "FAILED", "errorMessage": "..."},
//	 "responseCode": "CLIENT_ERROR", "result": {}}
package api
