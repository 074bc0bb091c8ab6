package graph

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/model"
	"github.com/sahilchouksey/todo-graphql-api/utils/gqlerror"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
	"go.appointy.com/jaal/schemabuilder"
)

const maxTitleLength = 50

// Argument field names become the GraphQL argument names with the first
// rune lowercased, so the casing below is part of the wire contract.

// TodosArgs are the arguments of the todos query.
type TodosArgs struct {
	Search *string
}

// TodoByIdArgs are the arguments of the todoById query.
type TodoByIdArgs struct {
	Id int64
}

// CreateTodoArgs are the arguments of the createTodo mutation.
type CreateTodoArgs struct {
	Title       string
	Description string
	Priority    *string
}

// UpdateTodoArgs are the arguments of the updateTodo mutation. Absent
// fields leave the stored value unchanged.
type UpdateTodoArgs struct {
	TodoId      int64
	Title       *string
	Description *string
	Priority    *string
	Status      *string
}

// DeleteTodoArgs are the arguments of the deleteTodo mutation.
type DeleteTodoArgs struct {
	TodoId int64
}

func (r *Resolver) registerTodoQueries(sb *schemabuilder.Schema) {
	q := sb.Query()
	q.FieldFunc("todos", r.Todos)
	q.FieldFunc("todoById", r.TodoByID)
}

func (r *Resolver) registerTodoMutations(sb *schemabuilder.Schema) {
	m := sb.Mutation()
	m.FieldFunc("createTodo", r.CreateTodo)
	m.FieldFunc("updateTodo", r.UpdateTodo)
	m.FieldFunc("deleteTodo", r.DeleteTodo)
}

// Todos returns all todos, or those whose title, priority or status contains
// the search substring (case-insensitive, OR across the three fields).
func (r *Resolver) Todos(ctx context.Context, args TodosArgs) ([]*Todo, error) {
	search := ""
	if args.Search != nil {
		search = *args.Search
	}

	todos, err := r.store.ListTodos(search)
	if err != nil {
		return nil, err
	}
	return newTodoList(todos), nil
}

// TodoByID returns the todo with the given id.
func (r *Resolver) TodoByID(ctx context.Context, args TodoByIdArgs) (*Todo, error) {
	todo, err := r.fetchTodo(args.Id)
	if err != nil {
		return nil, err
	}
	return newTodo(todo), nil
}

// CreateTodo persists a new todo. Priority defaults to "low" and is
// uppercased before storage; status starts as ACTIVE.
func (r *Resolver) CreateTodo(ctx context.Context, args CreateTodoArgs) (*Todo, error) {
	if utf8.RuneCountInString(args.Title) > maxTitleLength {
		return nil, gqlerror.Validation("Title must be at most %d characters", maxTitleLength)
	}

	rawPriority := "low"
	if args.Priority != nil {
		rawPriority = *args.Priority
	}
	priority, err := model.ParsePriority(rawPriority)
	if err != nil {
		return nil, gqlerror.Validation("%s", err.Error())
	}

	todo := &model.Todo{
		Title:       args.Title,
		Description: args.Description,
		Priority:    priority,
		Status:      model.StatusActive,
	}

	viewer, authenticated := middleware.ViewerFromContext(ctx)
	if authenticated {
		id := viewer.ID
		todo.CreatedByID = &id
	}

	if err := r.store.CreateTodo(todo); err != nil {
		return nil, err
	}
	if authenticated {
		todo.CreatedBy = viewer
	}
	return newTodo(todo), nil
}

// UpdateTodo overwrites the supplied fields of an existing todo. Priority and
// status are uppercased before storage.
func (r *Resolver) UpdateTodo(ctx context.Context, args UpdateTodoArgs) (*Todo, error) {
	todo, err := r.fetchTodo(args.TodoId)
	if err != nil {
		return nil, err
	}

	if args.Title != nil {
		if utf8.RuneCountInString(*args.Title) > maxTitleLength {
			return nil, gqlerror.Validation("Title must be at most %d characters", maxTitleLength)
		}
		todo.Title = *args.Title
	}
	if args.Description != nil {
		todo.Description = *args.Description
	}
	if args.Priority != nil {
		priority, err := model.ParsePriority(*args.Priority)
		if err != nil {
			return nil, gqlerror.Validation("%s", err.Error())
		}
		todo.Priority = priority
	}
	if args.Status != nil {
		status, err := model.ParseStatus(*args.Status)
		if err != nil {
			return nil, gqlerror.Validation("%s", err.Error())
		}
		todo.Status = status
	}

	if err := r.store.SaveTodo(todo); err != nil {
		return nil, err
	}
	return newTodo(todo), nil
}

// DeleteTodo removes a todo and returns the id that was deleted.
func (r *Resolver) DeleteTodo(ctx context.Context, args DeleteTodoArgs) (int64, error) {
	if _, err := r.fetchTodo(args.TodoId); err != nil {
		return 0, err
	}

	if err := r.store.DeleteTodo(uint(args.TodoId)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, gqlerror.NotFound("Todo matching id %d does not exist", args.TodoId)
		}
		return 0, err
	}
	return args.TodoId, nil
}

func (r *Resolver) fetchTodo(id int64) (*model.Todo, error) {
	todo, err := r.store.GetTodoByID(uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, gqlerror.NotFound("Todo matching id %d does not exist", id)
		}
		return nil, err
	}
	return todo, nil
}
