// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a decoded request value and returns a
// Response. Wrap binds the request with the configured binders, applies
// decorators, renders the response and routes every failure (bind error,
// nil response, render error) to a single ErrorHandler:
//
//	signin := handler.HandlerFunc[handler.Context, SigninRequest](
//		func(ctx handler.Context, req SigninRequest) handler.Response {
//			acc, err := svc.Signin(ctx, req.Email, req.Password)
//			if err != nil {
//				return handler.Error(err)
//			}
//			return handler.JSON(userResponse{User: acc})
//		},
//	)
//
//	r.Post("/signin", handler.Wrap(signin,
//		handler.WithBinder[handler.Context, SigninRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, SigninRequest](handler.NewErrorHandler(log)),
//	))
//
// NewErrorHandler answers with a JSON body {"message": "..."}. HTTPError
// carries the status and the client-facing message; any other error is a
// 500 with a generic message and is logged at ERROR. Client errors are
// logged at WARN.
package handler
