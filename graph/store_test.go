package graph

import (
	"sort"
	"strings"
	"time"

	"github.com/sahilchouksey/todo-graphql-api/database"
	"github.com/sahilchouksey/todo-graphql-api/model"
)

// fakeStore is an in-memory database.Storage used by the resolver tests.
type fakeStore struct {
	todos      map[uint]*model.Todo
	users      map[uint]*model.User
	nextTodoID uint
	nextUserID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		todos:      make(map[uint]*model.Todo),
		users:      make(map[uint]*model.User),
		nextTodoID: 1,
		nextUserID: 1,
	}
}

func (f *fakeStore) Init() error        { return nil }
func (f *fakeStore) Close() error       { return nil }
func (f *fakeStore) HealthCheck() error { return nil }
func (f *fakeStore) GetDB() interface{} { return nil }

func (f *fakeStore) ListTodos(search string) ([]model.Todo, error) {
	var out []model.Todo
	needle := strings.ToLower(search)
	for _, t := range f.todos {
		if search != "" {
			haystack := strings.ToLower(t.Title + " " + string(t.Priority) + " " + string(t.Status))
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetTodoByID(id uint) (*model.Todo, error) {
	t, ok := f.todos[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeStore) CreateTodo(todo *model.Todo) error {
	todo.ID = f.nextTodoID
	f.nextTodoID++
	now := time.Now()
	todo.CreateDate = now
	todo.ModifiedDate = now
	copied := *todo
	f.todos[todo.ID] = &copied
	return nil
}

func (f *fakeStore) SaveTodo(todo *model.Todo) error {
	todo.ModifiedDate = time.Now()
	copied := *todo
	f.todos[todo.ID] = &copied
	return nil
}

func (f *fakeStore) DeleteTodo(id uint) error {
	if _, ok := f.todos[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.todos, id)
	return nil
}

func (f *fakeStore) ListUsers() ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetUserByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeStore) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) GetUserByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) CreateUser(user *model.User) error {
	user.ID = f.nextUserID
	f.nextUserID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeStore) SaveUser(user *model.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeStore) DeleteUser(id uint) error {
	if _, ok := f.users[id]; !ok {
		return database.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
