package graph

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/sahilchouksey/todo-graphql-api/model"
	"github.com/sahilchouksey/todo-graphql-api/utils/auth"
	"github.com/sahilchouksey/todo-graphql-api/utils/gqlerror"
	"github.com/sahilchouksey/todo-graphql-api/utils/middleware"
)

func newTestResolver() (*Resolver, *fakeStore) {
	store := newFakeStore()
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret:        "test-secret",
		Expiry:        24 * time.Hour,
		RefreshExpiry: 7 * 24 * time.Hour,
		Issuer:        "test",
	})
	return NewResolver(store, jwtManager, nil), store
}

func TestCreateTodoNormalizesPriority(t *testing.T) {
	r, _ := newTestResolver()

	todo, err := r.CreateTodo(context.Background(), CreateTodoArgs{
		Title:       "Buy milk",
		Description: "2 liters",
		Priority:    strPtr("high"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, model.PriorityHigh, todo.Priority)
	assert.Equal(t, model.StatusActive, todo.Status)
	assert.Nil(t, todo.CreatedBy)
}

func TestCreateTodoDefaultsPriorityToLow(t *testing.T) {
	r, _ := newTestResolver()

	todo, err := r.CreateTodo(context.Background(), CreateTodoArgs{Title: "Walk the dog"})
	require.NoError(t, err)
	assert.Equal(t, model.PriorityLow, todo.Priority)
}

func TestCreateTodoRejectsInvalidPriority(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.CreateTodo(context.Background(), CreateTodoArgs{
		Title:    "Buy milk",
		Priority: strPtr("urgent"),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, gqlerror.Code(err))
}

func TestCreateTodoRejectsLongTitle(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.CreateTodo(context.Background(), CreateTodoArgs{
		Title: strings.Repeat("x", maxTitleLength+1),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, gqlerror.Code(err))
}

func TestCreateTodoTitleLengthCountsRunes(t *testing.T) {
	r, _ := newTestResolver()

	// 50 two-byte runes: over the limit in bytes, within it in characters.
	todo, err := r.CreateTodo(context.Background(), CreateTodoArgs{
		Title: strings.Repeat("ä", maxTitleLength),
	})
	require.NoError(t, err)
	assert.Equal(t, maxTitleLength, utf8.RuneCountInString(todo.Title))

	_, err = r.CreateTodo(context.Background(), CreateTodoArgs{
		Title: strings.Repeat("ä", maxTitleLength+1),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, gqlerror.Code(err))
}

func TestCreateTodoRecordsViewer(t *testing.T) {
	r, store := newTestResolver()

	user := &model.User{Username: "alice", Email: "alice@example.com"}
	require.NoError(t, store.CreateUser(user))

	ctx := middleware.NewViewerContext(context.Background(), user)
	todo, err := r.CreateTodo(ctx, CreateTodoArgs{Title: "Buy milk"})
	require.NoError(t, err)

	require.NotNil(t, todo.CreatedBy)
	assert.Equal(t, "alice", todo.CreatedBy.Username)

	stored, err := store.GetTodoByID(uint(todo.Id))
	require.NoError(t, err)
	require.NotNil(t, stored.CreatedByID)
	assert.Equal(t, user.ID, *stored.CreatedByID)
}

func TestUpdateTodoAppliesOnlySuppliedFields(t *testing.T) {
	r, _ := newTestResolver()

	created, err := r.CreateTodo(context.Background(), CreateTodoArgs{
		Title:       "Buy milk",
		Description: "2 liters",
		Priority:    strPtr("medium"),
	})
	require.NoError(t, err)

	updated, err := r.UpdateTodo(context.Background(), UpdateTodoArgs{
		TodoId: created.Id,
		Status: strPtr("done"),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusDone, updated.Status)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "2 liters", updated.Description)
	assert.Equal(t, model.PriorityMedium, updated.Priority)
}

func TestUpdateTodoRejectsInvalidStatus(t *testing.T) {
	r, _ := newTestResolver()

	created, err := r.CreateTodo(context.Background(), CreateTodoArgs{Title: "Buy milk"})
	require.NoError(t, err)

	_, err = r.UpdateTodo(context.Background(), UpdateTodoArgs{
		TodoId: created.Id,
		Status: strPtr("finished"),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, gqlerror.Code(err))
}

func TestUpdateTodoMissing(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.UpdateTodo(context.Background(), UpdateTodoArgs{TodoId: 42})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, gqlerror.Code(err))
}

func TestDeleteTodo(t *testing.T) {
	r, _ := newTestResolver()

	created, err := r.CreateTodo(context.Background(), CreateTodoArgs{Title: "Buy milk"})
	require.NoError(t, err)

	id, err := r.DeleteTodo(context.Background(), DeleteTodoArgs{TodoId: created.Id})
	require.NoError(t, err)
	assert.Equal(t, created.Id, id)

	_, err = r.TodoByID(context.Background(), TodoByIdArgs{Id: created.Id})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, gqlerror.Code(err))
}

func TestDeleteTodoMissing(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.DeleteTodo(context.Background(), DeleteTodoArgs{TodoId: 99})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, gqlerror.Code(err))
}

func TestTodosSearch(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.CreateTodo(context.Background(), CreateTodoArgs{Title: "Buy milk", Priority: strPtr("high")})
	require.NoError(t, err)
	_, err = r.CreateTodo(context.Background(), CreateTodoArgs{Title: "Walk the dog"})
	require.NoError(t, err)

	all, err := r.Todos(context.Background(), TodosArgs{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := r.Todos(context.Background(), TodosArgs{Search: strPtr("milk")})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Buy milk", matched[0].Title)

	none, err := r.Todos(context.Background(), TodosArgs{Search: strPtr("groceries")})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTodoByIDMissing(t *testing.T) {
	r, _ := newTestResolver()

	_, err := r.TodoByID(context.Background(), TodoByIdArgs{Id: 7})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, gqlerror.Code(err))
	assert.Contains(t, err.Error(), "does not exist")
}
