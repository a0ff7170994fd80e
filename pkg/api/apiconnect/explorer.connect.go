package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tripmate/pkg/api"
)

// ExplorerServiceName is the fully-qualified name of the ExplorerService service.
const ExplorerServiceName = "tripmate.v1.ExplorerService"

// Procedure paths, used for routing and by interceptors.
const (
	ExplorerServiceSearchPlacesProcedure       = "/tripmate.v1.ExplorerService/SearchPlaces"
	ExplorerServiceParseItineraryFileProcedure = "/tripmate.v1.ExplorerService/ParseItineraryFile"
	ExplorerServiceItineraryPlacesProcedure    = "/tripmate.v1.ExplorerService/ItineraryPlaces"
	ExplorerServiceCalculateRouteProcedure     = "/tripmate.v1.ExplorerService/CalculateRoute"
)

// ExplorerServiceClient is a client for the tripmate.v1.ExplorerService service.
type ExplorerServiceClient interface {
	SearchPlaces(context.Context, *connect.Request[api.SearchPlacesRequest]) (*connect.Response[api.SearchPlacesResponse], error)
	ParseItineraryFile(context.Context, *connect.Request[api.ParseItineraryFileRequest]) (*connect.Response[api.ParseItineraryFileResponse], error)
	ItineraryPlaces(context.Context, *connect.Request[api.ItineraryPlacesRequest]) (*connect.Response[api.ItineraryPlacesResponse], error)
	CalculateRoute(context.Context, *connect.Request[api.CalculateRouteRequest]) (*connect.Response[api.CalculateRouteResponse], error)
}

// NewExplorerServiceClient constructs a client for the tripmate.v1.ExplorerService service.
// The JSON codec is always applied; opts are appended after it.
func NewExplorerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExplorerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append(clientCodecOptions(), opts...)
	return &explorerServiceClient{
		searchPlaces: connect.NewClient[api.SearchPlacesRequest, api.SearchPlacesResponse](
			httpClient,
			baseURL+ExplorerServiceSearchPlacesProcedure,
			opts...,
		),
		parseItineraryFile: connect.NewClient[api.ParseItineraryFileRequest, api.ParseItineraryFileResponse](
			httpClient,
			baseURL+ExplorerServiceParseItineraryFileProcedure,
			opts...,
		),
		itineraryPlaces: connect.NewClient[api.ItineraryPlacesRequest, api.ItineraryPlacesResponse](
			httpClient,
			baseURL+ExplorerServiceItineraryPlacesProcedure,
			opts...,
		),
		calculateRoute: connect.NewClient[api.CalculateRouteRequest, api.CalculateRouteResponse](
			httpClient,
			baseURL+ExplorerServiceCalculateRouteProcedure,
			opts...,
		),
	}
}

type explorerServiceClient struct {
	searchPlaces       *connect.Client[api.SearchPlacesRequest, api.SearchPlacesResponse]
	parseItineraryFile *connect.Client[api.ParseItineraryFileRequest, api.ParseItineraryFileResponse]
	itineraryPlaces    *connect.Client[api.ItineraryPlacesRequest, api.ItineraryPlacesResponse]
	calculateRoute     *connect.Client[api.CalculateRouteRequest, api.CalculateRouteResponse]
}

func (c *explorerServiceClient) SearchPlaces(ctx context.Context, req *connect.Request[api.SearchPlacesRequest]) (*connect.Response[api.SearchPlacesResponse], error) {
	return c.searchPlaces.CallUnary(ctx, req)
}

func (c *explorerServiceClient) ParseItineraryFile(ctx context.Context, req *connect.Request[api.ParseItineraryFileRequest]) (*connect.Response[api.ParseItineraryFileResponse], error) {
	return c.parseItineraryFile.CallUnary(ctx, req)
}

func (c *explorerServiceClient) ItineraryPlaces(ctx context.Context, req *connect.Request[api.ItineraryPlacesRequest]) (*connect.Response[api.ItineraryPlacesResponse], error) {
	return c.itineraryPlaces.CallUnary(ctx, req)
}

func (c *explorerServiceClient) CalculateRoute(ctx context.Context, req *connect.Request[api.CalculateRouteRequest]) (*connect.Response[api.CalculateRouteResponse], error) {
	return c.calculateRoute.CallUnary(ctx, req)
}

// ExplorerServiceHandler is implemented by the server side of tripmate.v1.ExplorerService.
// ExplorerService looks up places and routes in the trip city.
type ExplorerServiceHandler interface {
	SearchPlaces(context.Context, *connect.Request[api.SearchPlacesRequest]) (*connect.Response[api.SearchPlacesResponse], error)
	ParseItineraryFile(context.Context, *connect.Request[api.ParseItineraryFileRequest]) (*connect.Response[api.ParseItineraryFileResponse], error)
	ItineraryPlaces(context.Context, *connect.Request[api.ItineraryPlacesRequest]) (*connect.Response[api.ItineraryPlacesResponse], error)
	CalculateRoute(context.Context, *connect.Request[api.CalculateRouteRequest]) (*connect.Response[api.CalculateRouteResponse], error)
}

// NewExplorerServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewExplorerServiceHandler(svc ExplorerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(handlerCodecOptions(), opts...)
	explorerSearchPlacesHandler := connect.NewUnaryHandler(
		ExplorerServiceSearchPlacesProcedure,
		svc.SearchPlaces,
		opts...,
	)
	explorerParseItineraryFileHandler := connect.NewUnaryHandler(
		ExplorerServiceParseItineraryFileProcedure,
		svc.ParseItineraryFile,
		opts...,
	)
	explorerItineraryPlacesHandler := connect.NewUnaryHandler(
		ExplorerServiceItineraryPlacesProcedure,
		svc.ItineraryPlaces,
		opts...,
	)
	explorerCalculateRouteHandler := connect.NewUnaryHandler(
		ExplorerServiceCalculateRouteProcedure,
		svc.CalculateRoute,
		opts...,
	)
	return "/tripmate.v1.ExplorerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExplorerServiceSearchPlacesProcedure:
			explorerSearchPlacesHandler.ServeHTTP(w, r)
		case ExplorerServiceParseItineraryFileProcedure:
			explorerParseItineraryFileHandler.ServeHTTP(w, r)
		case ExplorerServiceItineraryPlacesProcedure:
			explorerItineraryPlacesHandler.ServeHTTP(w, r)
		case ExplorerServiceCalculateRouteProcedure:
			explorerCalculateRouteHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedExplorerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExplorerServiceHandler struct{}

func (UnimplementedExplorerServiceHandler) SearchPlaces(context.Context, *connect.Request[api.SearchPlacesRequest]) (*connect.Response[api.SearchPlacesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExplorerService.SearchPlaces is not implemented"))
}

func (UnimplementedExplorerServiceHandler) ParseItineraryFile(context.Context, *connect.Request[api.ParseItineraryFileRequest]) (*connect.Response[api.ParseItineraryFileResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExplorerService.ParseItineraryFile is not implemented"))
}

func (UnimplementedExplorerServiceHandler) ItineraryPlaces(context.Context, *connect.Request[api.ItineraryPlacesRequest]) (*connect.Response[api.ItineraryPlacesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExplorerService.ItineraryPlaces is not implemented"))
}

func (UnimplementedExplorerServiceHandler) CalculateRoute(context.Context, *connect.Request[api.CalculateRouteRequest]) (*connect.Response[api.CalculateRouteResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("tripmate.v1.ExplorerService.CalculateRoute is not implemented"))
}
