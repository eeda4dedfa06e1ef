package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers[name] = value
	}
}

// WithBearerToken добавляет заголовок Authorization с jwt токеном.
func WithBearerToken(token string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers["Authorization"] = "Bearer " + token
	}
}

func WithJSON() func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers["Content-Type"] = "application/json"
	}
}
