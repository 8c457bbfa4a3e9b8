package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/fuelcalc/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to the calculation services.
// Validation failures are returned in the payload's errors list, not as GraphQL errors,
// so clients see every failure in rule order.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "GeoPointInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"latitude":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"longitude": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
		},
	})

	failureType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ValidationFailure",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.String},
		},
	})

	fuelEstimateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "FuelEstimate",
		Fields: graphql.Fields{
			"totalCost": &graphql.Field{Type: graphql.Float},
			"errors":    &graphql.Field{Type: graphql.NewList(failureType)},
		},
	})

	distanceEstimateType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DistanceEstimate",
		Fields: graphql.Fields{
			"distance": &graphql.Field{Type: graphql.Float},
			"errors":   &graphql.Field{Type: graphql.NewList(failureType)},
		},
	})

	fuelArgs := func(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
		args := graphql.FieldConfigArgument{
			"fuelConsumptionPer100Km": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			"fuelPricePerLiter":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
			"averageSpeed":            &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
		}
		for k, v := range extra {
			args[k] = v
		}
		return args
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"fuelByDistance": &graphql.Field{
				Type:        fuelEstimateType,
				Description: "Trip fuel cost for a known distance in kilometres",
				Args: fuelArgs(graphql.FieldConfigArgument{
					"distance": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				}),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := domain.DistanceFuelRequest{
						FuelParams: fuelParamsArg(p.Args),
						Distance:   floatArg(p.Args, "distance"),
					}
					res, err := deps.Fuel.EstimateByDistance(p.Context, req)
					return fuelPayload(res, err)
				},
			},
			"fuelByPoints": &graphql.Field{
				Type:        fuelEstimateType,
				Description: "Trip fuel cost between two coordinates",
				Args: fuelArgs(graphql.FieldConfigArgument{
					"firstPoint":  &graphql.ArgumentConfig{Type: geoPointInput},
					"secondPoint": &graphql.ArgumentConfig{Type: geoPointInput},
				}),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pair := pointPairArg(p.Args)
					req := domain.PointsFuelRequest{
						FuelParams:  fuelParamsArg(p.Args),
						PointsOnMap: &pair,
					}
					res, err := deps.Fuel.EstimateByPoints(p.Context, req)
					return fuelPayload(res, err)
				},
			},
			"distanceByPoints": &graphql.Field{
				Type:        distanceEstimateType,
				Description: "Great-circle distance in kilometres between two coordinates",
				Args: graphql.FieldConfigArgument{
					"firstPoint":  &graphql.ArgumentConfig{Type: geoPointInput},
					"secondPoint": &graphql.ArgumentConfig{Type: geoPointInput},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					res, err := deps.Distance.Between(p.Context, pointPairArg(p.Args))
					if verr := asValidation(err); verr != nil {
						return map[string]interface{}{"errors": verr.Failures}, nil
					}
					if err != nil {
						return nil, err
					}
					return map[string]interface{}{"distance": res.DistanceKm, "errors": []domain.ValidationFailure{}}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

func fuelPayload(res *domain.FuelResult, err error) (interface{}, error) {
	if verr := asValidation(err); verr != nil {
		return map[string]interface{}{"errors": verr.Failures}, nil
	}
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"totalCost": res.TotalCost, "errors": []domain.ValidationFailure{}}, nil
}

func asValidation(err error) *domain.ValidationError {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

func floatArg(args map[string]interface{}, name string) float64 {
	v, _ := args[name].(float64)
	return v
}

func fuelParamsArg(args map[string]interface{}) domain.FuelParams {
	return domain.FuelParams{
		FuelPricePerLiter:       floatArg(args, "fuelPricePerLiter"),
		AverageSpeed:            floatArg(args, "averageSpeed"),
		FuelConsumptionPer100Km: floatArg(args, "fuelConsumptionPer100Km"),
	}
}

// pointArg returns nil when the argument was omitted or null.
func pointArg(args map[string]interface{}, name string) *domain.GeoPoint {
	m, ok := args[name].(map[string]interface{})
	if !ok {
		return nil
	}
	return &domain.GeoPoint{Latitude: floatArg(m, "latitude"), Longitude: floatArg(m, "longitude")}
}

func pointPairArg(args map[string]interface{}) domain.PointPair {
	return domain.PointPair{
		FirstPoint:  pointArg(args, "firstPoint"),
		SecondPoint: pointArg(args, "secondPoint"),
	}
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
