package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/request"
)

// buildRequest builds the request for an endpoint name and its arguments.
func buildRequest(base request.BaseRequest, endpoint string, args []string) (request.Request, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: missing argument", endpoint)
	}

	switch endpoint {
	case "levels":
		return request.NewLevelsRequest(strings.Join(args, " ")).WithBase(base), nil
	case "user":
		return request.NewUserSearchRequest(strings.Join(args, " ")).WithBase(base), nil
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid id %q", endpoint, args[0])
	}
	switch endpoint {
	case "level":
		return request.NewLevelRequest(id).WithBase(base), nil
	case "profile":
		return request.NewUserRequest(id).WithBase(base), nil
	case "comments":
		return request.NewLevelCommentsRequest(id).WithBase(base), nil
	case "posts":
		return request.NewProfileCommentsRequest(id).WithBase(base), nil
	default:
		return nil, fmt.Errorf("unknown endpoint: %s (valid: %s)", endpoint, strings.Join(endpointNames(), ", "))
	}
}

// printRequest encodes r and writes its URL and form body to w.
func printRequest(w io.Writer, logger log.Logger, endpoints request.Endpoints, r request.Request) error {
	body, err := request.LogEncode(logger, r)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	fmt.Fprintf(w, "POST %s\n", endpoints.URL(r))
	fmt.Fprintf(w, "  %s\n", body)
	return nil
}
