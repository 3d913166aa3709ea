package routeapi_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/routeweaver/pathcore/road"
	"github.com/routeweaver/pathcore/routeapi"
)

func buildRoadGraph(t *testing.T) *road.RoadGraph {
	t.Helper()
	rg := road.New()
	rg.AddRoadNode(1, 49.20, 6.95)
	rg.AddRoadNode(2, 49.25, 7.05)
	require.NoError(t, rg.AddRoad(road.Road{
		ID:      "r1",
		NodeIDs: []int{1, 2},
		Type:    road.Motorway,
		OneWay:  false,
	}))
	return rg
}

func TestHandlerFindsRouteByNodeID(t *testing.T) {
	require := require.New(t)
	rg := buildRoadGraph(t)
	s := routeapi.NewServer(rg, nil)

	reqBody, err := json.Marshal(routeapi.RouteRequest{Source: ptr.Int(1), Destination: ptr.Int(2)})
	require.NoError(err)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetBody(reqBody)

	s.Handler()(ctx)

	var resp routeapi.RouteResponse
	require.NoError(json.Unmarshal(ctx.Response.Body(), &resp))
	require.True(resp.Found)
	require.Equal([]int{1, 2}, resp.Nodes)
}

func TestHandlerRejectsNonPost(t *testing.T) {
	require := require.New(t)
	rg := buildRoadGraph(t)
	s := routeapi.NewServer(rg, nil)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)

	s.Handler()(ctx)
	require.Equal(fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestHandlerResolvesByCoordinates(t *testing.T) {
	require := require.New(t)
	rg := buildRoadGraph(t)
	s := routeapi.NewServer(rg, nil)

	reqBody, err := json.Marshal(routeapi.RouteRequest{
		SourceLat:      ptr.Float64(49.20),
		SourceLon:      ptr.Float64(6.95),
		DestinationLat: ptr.Float64(49.25),
		DestinationLon: ptr.Float64(7.05),
	})
	require.NoError(err)

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetBody(reqBody)

	s.Handler()(ctx)

	var resp routeapi.RouteResponse
	require.NoError(json.Unmarshal(ctx.Response.Body(), &resp))
	require.True(resp.Found)
}
