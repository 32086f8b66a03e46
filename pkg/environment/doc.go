// Package environment describes the deployment posture of the process
// (development, staging or production) and carries it through
// context.Context and HTTP requests.
//
// The posture decides security-relevant defaults elsewhere: the Secure flag
// on session cookies, whether a fallback signing secret is acceptable and
// whether password reset tokens may be echoed back to the caller.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-only behaviour
//	}
//
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(env))
//
// Unknown values parse to Development so a typo never silently enables
// production-only code paths; callers that must fail closed should check
// Valid before Parse.
package environment
