package routeapi

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gotidy/ptr"
	"github.com/valyala/fasthttp"

	"github.com/routeweaver/pathcore/landmark"
	"github.com/routeweaver/pathcore/road"
	"github.com/routeweaver/pathcore/routepath"
	"github.com/routeweaver/pathcore/search"
)

// ErrNoSource and ErrNoDestination are returned by resolveEndpoints when
// a request names neither a node id nor coordinates for an endpoint.
var (
	ErrNoSource      = errors.New("routeapi: request names no source")
	ErrNoDestination = errors.New("routeapi: request names no destination")
)

// Server answers route queries over a fixed road graph using whichever
// algorithm each request names.
type Server struct {
	rg  *road.RoadGraph
	alt *landmark.ALT // optional; nil disables "astar"
}

// NewServer wraps rg for querying. alt may be nil if the "astar"
// algorithm will never be requested.
func NewServer(rg *road.RoadGraph, alt *landmark.ALT) *Server {
	return &Server{rg: rg, alt: alt}
}

func (s *Server) resolveEndpoints(req *RouteRequest) (source, destination int, err error) {
	switch {
	case req.Source != nil:
		source = *req.Source
	case req.SourceLat != nil && req.SourceLon != nil:
		n, ok := s.rg.Nearest(float32(*req.SourceLat), float32(*req.SourceLon))
		if !ok {
			return 0, 0, ErrNoSource
		}
		source = n.ID
	default:
		return 0, 0, ErrNoSource
	}

	switch {
	case req.Destination != nil:
		destination = *req.Destination
	case req.DestinationLat != nil && req.DestinationLon != nil:
		n, ok := s.rg.Nearest(float32(*req.DestinationLat), float32(*req.DestinationLon))
		if !ok {
			return 0, 0, ErrNoDestination
		}
		destination = n.ID
	default:
		return 0, 0, ErrNoDestination
	}

	return source, destination, nil
}

func (s *Server) findPath(req *RouteRequest) (*routepath.Path, error) {
	source, destination, err := s.resolveEndpoints(req)
	if err != nil {
		return nil, err
	}

	algorithm := "dijkstra"
	if req.Algorithm != nil {
		algorithm = *req.Algorithm
	}

	g := s.rg.Underlying()
	switch algorithm {
	case "astar":
		if s.alt == nil {
			return nil, errors.New("routeapi: astar requested but no landmark metric configured")
		}
		p, _ := search.NewAStar(g, s.alt).Path(source, destination)
		return p, nil
	default:
		p, _ := search.NewDijkstra(g).Path(source, destination)
		return p, nil
	}
}

// Handler returns the fasthttp.RequestHandler serving POST /route.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if string(ctx.Method()) != fasthttp.MethodPost {
			ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
			return
		}

		var req RouteRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			return
		}

		path, err := s.findPath(&req)
		if err != nil {
			ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
			body, _ := json.Marshal(map[string]string{"error": err.Error()})
			ctx.SetBody(body)
			return
		}

		resp := RouteResponse{Found: path != nil}
		if path != nil {
			resp.Cost = ptr.Float64(path.Cost())
			resp.Nodes = path.Nodes()
		}

		body, marshalErr := json.Marshal(resp)
		if marshalErr != nil {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
			return
		}

		ctx.SetContentType("application/json")
		ctx.SetBody(body)
	}
}

// ListenAndServe starts the server on addr, blocking until it returns an
// error (matching fasthttp.ListenAndServe's own contract).
func (s *Server) ListenAndServe(addr string) error {
	return fasthttp.ListenAndServe(addr, s.Handler())
}
