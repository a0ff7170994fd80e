package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/pkg/api"
)

// ItineraryServiceName is the fully-qualified name of the ItineraryService service.
const ItineraryServiceName = "tripmate.v1.ItineraryService"

// Procedure paths, used for routing and by interceptors.
const (
	ItineraryServiceListItineraryProcedure       = "/tripmate.v1.ItineraryService/ListItinerary"
	ItineraryServiceAddItineraryItemProcedure    = "/tripmate.v1.ItineraryService/AddItineraryItem"
	ItineraryServiceUpdateItineraryItemProcedure = "/tripmate.v1.ItineraryService/UpdateItineraryItem"
	ItineraryServiceDeleteItineraryItemProcedure = "/tripmate.v1.ItineraryService/DeleteItineraryItem"
	ItineraryServiceAutoScheduleProcedure        = "/tripmate.v1.ItineraryService/AutoSchedule"
	ItineraryServiceWatchItineraryProcedure      = "/tripmate.v1.ItineraryService/WatchItinerary"
)

// ItineraryServiceClient is a client for the tripmate.v1.ItineraryService service.
type ItineraryServiceClient interface {
	ListItinerary(context.Context, *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error)
	AddItineraryItem(context.Context, *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error)
	UpdateItineraryItem(context.Context, *connect.Request[api.UpdateItineraryItemRequest]) (*connect.Response[api.UpdateItineraryItemResponse], error)
	DeleteItineraryItem(context.Context, *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error)
	AutoSchedule(context.Context, *connect.Request[api.AutoScheduleRequest]) (*connect.Response[api.AutoScheduleResponse], error)
	WatchItinerary(context.Context, *connect.Request[api.WatchItineraryRequest]) (*connect.ServerStreamForClient[api.ListItineraryResponse], error)
}

// NewItineraryServiceClient constructs a client for the tripmate.v1.ItineraryService service.
// The JSON codec is always applied; opts are appended after it.
func NewItineraryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ItineraryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append(clientCodecOptions(), opts...)
	return &itineraryServiceClient{
		listItinerary: connect.NewClient[api.ListItineraryRequest, api.ListItineraryResponse](
			httpClient,
			baseURL+ItineraryServiceListItineraryProcedure,
			opts...,
		),
		addItineraryItem: connect.NewClient[api.AddItineraryItemRequest, api.AddItineraryItemResponse](
			httpClient,
			baseURL+ItineraryServiceAddItineraryItemProcedure,
			opts...,
		),
		updateItineraryItem: connect.NewClient[api.UpdateItineraryItemRequest, api.UpdateItineraryItemResponse](
			httpClient,
			baseURL+ItineraryServiceUpdateItineraryItemProcedure,
			opts...,
		),
		deleteItineraryItem: connect.NewClient[api.DeleteItineraryItemRequest, api.DeleteItineraryItemResponse](
			httpClient,
			baseURL+ItineraryServiceDeleteItineraryItemProcedure,
			opts...,
		),
		autoSchedule: connect.NewClient[api.AutoScheduleRequest, api.AutoScheduleResponse](
			httpClient,
			baseURL+ItineraryServiceAutoScheduleProcedure,
			opts...,
		),
		watchItinerary: connect.NewClient[api.WatchItineraryRequest, api.ListItineraryResponse](
			httpClient,
			baseURL+ItineraryServiceWatchItineraryProcedure,
			opts...,
		),
	}
}

type itineraryServiceClient struct {
	listItinerary       *connect.Client[api.ListItineraryRequest, api.ListItineraryResponse]
	addItineraryItem    *connect.Client[api.AddItineraryItemRequest, api.AddItineraryItemResponse]
	updateItineraryItem *connect.Client[api.UpdateItineraryItemRequest, api.UpdateItineraryItemResponse]
	deleteItineraryItem *connect.Client[api.DeleteItineraryItemRequest, api.DeleteItineraryItemResponse]
	autoSchedule        *connect.Client[api.AutoScheduleRequest, api.AutoScheduleResponse]
	watchItinerary      *connect.Client[api.WatchItineraryRequest, api.ListItineraryResponse]
}

func (c *itineraryServiceClient) ListItinerary(ctx context.Context, req *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error) {
	return c.listItinerary.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) AddItineraryItem(ctx context.Context, req *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error) {
	return c.addItineraryItem.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) UpdateItineraryItem(ctx context.Context, req *connect.Request[api.UpdateItineraryItemRequest]) (*connect.Response[api.UpdateItineraryItemResponse], error) {
	return c.updateItineraryItem.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) DeleteItineraryItem(ctx context.Context, req *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error) {
	return c.deleteItineraryItem.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) AutoSchedule(ctx context.Context, req *connect.Request[api.AutoScheduleRequest]) (*connect.Response[api.AutoScheduleResponse], error) {
	return c.autoSchedule.CallUnary(ctx, req)
}

func (c *itineraryServiceClient) WatchItinerary(ctx context.Context, req *connect.Request[api.WatchItineraryRequest]) (*connect.ServerStreamForClient[api.ListItineraryResponse], error) {
	return c.watchItinerary.CallServerStream(ctx, req)
}

// ItineraryServiceHandler is implemented by the server side of tripmate.v1.ItineraryService.
// ItineraryService manages the day-by-day plan.
type ItineraryServiceHandler interface {
	ListItinerary(context.Context, *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error)
	AddItineraryItem(context.Context, *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error)
	UpdateItineraryItem(context.Context, *connect.Request[api.UpdateItineraryItemRequest]) (*connect.Response[api.UpdateItineraryItemResponse], error)
	DeleteItineraryItem(context.Context, *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error)
	AutoSchedule(context.Context, *connect.Request[api.AutoScheduleRequest]) (*connect.Response[api.AutoScheduleResponse], error)
	WatchItinerary(context.Context, *connect.Request[api.WatchItineraryRequest], *connect.ServerStream[api.ListItineraryResponse]) error
}

// NewItineraryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewItineraryServiceHandler(svc ItineraryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecOptions(), opts...)
	itineraryListItineraryHandler := connect.NewUnaryHandler(
		ItineraryServiceListItineraryProcedure,
		svc.ListItinerary,
		opts...,
	)
	itineraryAddItineraryItemHandler := connect.NewUnaryHandler(
		ItineraryServiceAddItineraryItemProcedure,
		svc.AddItineraryItem,
		opts...,
	)
	itineraryUpdateItineraryItemHandler := connect.NewUnaryHandler(
		ItineraryServiceUpdateItineraryItemProcedure,
		svc.UpdateItineraryItem,
		opts...,
	)
	itineraryDeleteItineraryItemHandler := connect.NewUnaryHandler(
		ItineraryServiceDeleteItineraryItemProcedure,
		svc.DeleteItineraryItem,
		opts...,
	)
	itineraryAutoScheduleHandler := connect.NewUnaryHandler(
		ItineraryServiceAutoScheduleProcedure,
		svc.AutoSchedule,
		opts...,
	)
	itineraryWatchItineraryHandler := connect.NewServerStreamHandler(
		ItineraryServiceWatchItineraryProcedure,
		svc.WatchItinerary,
		opts...,
	)
	return "/tripmate.v1.ItineraryService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ItineraryServiceListItineraryProcedure:
			itineraryListItineraryHandler.ServeHTTP(w, r)
		case ItineraryServiceAddItineraryItemProcedure:
			itineraryAddItineraryItemHandler.ServeHTTP(w, r)
		case ItineraryServiceUpdateItineraryItemProcedure:
			itineraryUpdateItineraryItemHandler.ServeHTTP(w, r)
		case ItineraryServiceDeleteItineraryItemProcedure:
			itineraryDeleteItineraryItemHandler.ServeHTTP(w, r)
		case ItineraryServiceAutoScheduleProcedure:
			itineraryAutoScheduleHandler.ServeHTTP(w, r)
		case ItineraryServiceWatchItineraryProcedure:
			itineraryWatchItineraryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedItineraryServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedItineraryServiceHandler struct{}

func (UnimplementedItineraryServiceHandler) ListItinerary(context.Context, *connect.Request[api.ListItineraryRequest]) (*connect.Response[api.ListItineraryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ItineraryService.ListItinerary is not implemented"))
}

func (UnimplementedItineraryServiceHandler) AddItineraryItem(context.Context, *connect.Request[api.AddItineraryItemRequest]) (*connect.Response[api.AddItineraryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ItineraryService.AddItineraryItem is not implemented"))
}

func (UnimplementedItineraryServiceHandler) UpdateItineraryItem(context.Context, *connect.Request[api.UpdateItineraryItemRequest]) (*connect.Response[api.UpdateItineraryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ItineraryService.UpdateItineraryItem is not implemented"))
}

func (UnimplementedItineraryServiceHandler) DeleteItineraryItem(context.Context, *connect.Request[api.DeleteItineraryItemRequest]) (*connect.Response[api.DeleteItineraryItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ItineraryService.DeleteItineraryItem is not implemented"))
}

func (UnimplementedItineraryServiceHandler) AutoSchedule(context.Context, *connect.Request[api.AutoScheduleRequest]) (*connect.Response[api.AutoScheduleResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ItineraryService.AutoSchedule is not implemented"))
}

func (UnimplementedItineraryServiceHandler) WatchItinerary(context.Context, *connect.Request[api.WatchItineraryRequest], *connect.ServerStream[api.ListItineraryResponse]) error {
	return connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ItineraryService.WatchItinerary is not implemented"))
}
