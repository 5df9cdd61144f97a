package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// parties
	RouteParties = RouteApiV1 + "/parties"
	RoutePeople  = RouteParties + "/people"
	RoutePerson  = RoutePeople + "/:person_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
