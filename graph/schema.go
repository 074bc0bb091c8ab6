// Package graph exposes the todo and user operations as a single GraphQL
// schema served over HTTP.
package graph

import (
	"net/http"

	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/utils/auth"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
	"github.com/sahilchouksey/todo-graphql-api/utils/validation"
	"go.appointy.com/jaal"
	"go.appointy.com/jaal/graphql"
	"go.appointy.com/jaal/introspection"
	"go.appointy.com/jaal/schemabuilder"
)

// Resolver wires the GraphQL operations to their backing services.
type Resolver struct {
	store      database.Storage
	jwt        *auth.JWTManager
	loginGuard *middleware.BruteForceProtection
	validator  *validation.Validator
}

// NewResolver creates a resolver. loginGuard may be nil, in which case failed
// login attempts are not throttled.
func NewResolver(store database.Storage, jwtManager *auth.JWTManager, loginGuard *middleware.BruteForceProtection) *Resolver {
	return &Resolver{
		store:      store,
		jwt:        jwtManager,
		loginGuard: loginGuard,
		validator:  validation.NewValidator(),
	}
}

// BuildSchema composes the todo and user query/mutation sets into the one
// externally exposed schema.
func BuildSchema(r *Resolver) (*graphql.Schema, error) {
	sb := schemabuilder.NewSchema()

	registerEnums(sb)
	registerObjects(sb)

	r.registerTodoQueries(sb)
	r.registerTodoMutations(sb)
	r.registerUserQueries(sb)
	r.registerUserMutations(sb)
	r.registerAuthMutations(sb)

	schema, err := sb.Build()
	if err != nil {
		return nil, err
	}

	introspection.AddIntrospectionToSchema(schema)
	return schema, nil
}

// NewHandler returns the HTTP handler serving the composed schema.
func NewHandler(r *Resolver) (http.Handler, error) {
	schema, err := BuildSchema(r)
	if err != nil {
		return nil, err
	}
	return jaal.HTTPHandler(schema), nil
}
