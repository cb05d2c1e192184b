package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/jobtasks/backend/api/transport"
	"github.com/jobtasks/backend/domain"
	taskUC "github.com/jobtasks/backend/usecase/task"
)

func newTaskFixture(repo *memTaskRepo) *TaskHandler {
	return NewTaskHandler(taskUC.New(repo, nil), nil, nil)
}

func newRequestCtx(method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	return ctx
}

func decodeBody(t *testing.T, ctx *fasthttp.RequestCtx, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), v))
}

func TestCreateTask_EndToEnd(t *testing.T) {
	repo := newMemTaskRepo()
	h := newTaskFixture(repo)

	ctx := newRequestCtx(http.MethodPost, "/tasks", `{"title":"Write report","category":"work"}`)
	h.CreateTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	var created transport.TaskCreatedResponse
	decodeBody(t, ctx, &created)
	assert.Equal(t, "Task added successfully", created.Message)
	require.Len(t, created.InsertedID, 24)

	getCtx := newRequestCtx(http.MethodGet, "/tasks/"+created.InsertedID, "")
	getCtx.SetUserValue("id", created.InsertedID)
	h.GetTask(getCtx)

	require.Equal(t, http.StatusOK, getCtx.Response.StatusCode())
	var task domain.Task
	decodeBody(t, getCtx, &task)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "work", task.Category)
	assert.Equal(t, "", task.Description)
	assert.False(t, task.Timestamp.IsZero())
	assert.Equal(t, created.InsertedID, task.ID.Hex())
}

func TestCreateTask_MissingCategory(t *testing.T) {
	h := newTaskFixture(newMemTaskRepo())

	ctx := newRequestCtx(http.MethodPost, "/tasks", `{"title":"Write report"}`)
	h.CreateTask(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	var resp transport.ErrorResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, "Title and category are required", resp.Error)
}

func TestCreateTask_MalformedJSON(t *testing.T) {
	h := newTaskFixture(newMemTaskRepo())

	ctx := newRequestCtx(http.MethodPost, "/tasks", `{"title":`)
	h.CreateTask(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestGetTasks_EmptyRendersArray(t *testing.T) {
	h := newTaskFixture(newMemTaskRepo())

	ctx := newRequestCtx(http.MethodGet, "/tasks", "")
	h.GetTasks(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `[]`, string(ctx.Response.Body()))
}

func TestGetTasks_StoreFailure(t *testing.T) {
	repo := newMemTaskRepo()
	repo.failAll = domain.WrapError(domain.ErrCodeStoreFailure, "Failed to fetch tasks", errors.New("server selection timeout"))
	h := newTaskFixture(repo)

	ctx := newRequestCtx(http.MethodGet, "/tasks", "")
	h.GetTasks(ctx)

	require.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	var resp transport.StoreErrorResponse
	decodeBody(t, ctx, &resp)
	assert.Equal(t, "Failed to fetch tasks", resp.Message)
	assert.Equal(t, "server selection timeout", resp.Error)
}

func TestUpdateTask_InvalidID(t *testing.T) {
	h := newTaskFixture(newMemTaskRepo())

	ctx := newRequestCtx(http.MethodPut, "/tasks/nope", `{"title":"a","description":"d","category":"c"}`)
	ctx.SetUserValue("id", "nope")
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Invalid task ID"}`, string(ctx.Response.Body()))
}

func TestUpdateTask_Success(t *testing.T) {
	repo := newMemTaskRepo()
	h := newTaskFixture(repo)

	createCtx := newRequestCtx(http.MethodPost, "/tasks", `{"title":"a","category":"work"}`)
	h.CreateTask(createCtx)
	var created transport.TaskCreatedResponse
	decodeBody(t, createCtx, &created)

	ctx := newRequestCtx(http.MethodPut, "/tasks/"+created.InsertedID, `{"title":"b","description":"d","category":"home"}`)
	ctx.SetUserValue("id", created.InsertedID)
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"message":"Task updated successfully"}`, string(ctx.Response.Body()))
}

func TestUpdateTask_MissingDescription(t *testing.T) {
	h := newTaskFixture(newMemTaskRepo())
	raw := "68b0c0ffee00112233445566"

	ctx := newRequestCtx(http.MethodPut, "/tasks/"+raw, `{"title":"a","category":"work"}`)
	ctx.SetUserValue("id", raw)
	h.UpdateTask(ctx)

	require.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"error":"Title and description are required"}`, string(ctx.Response.Body()))
}

func TestDeleteTask_TwiceReports404(t *testing.T) {
	repo := newMemTaskRepo()
	h := newTaskFixture(repo)

	createCtx := newRequestCtx(http.MethodPost, "/tasks", `{"title":"a","category":"work"}`)
	h.CreateTask(createCtx)
	var created transport.TaskCreatedResponse
	decodeBody(t, createCtx, &created)

	first := newRequestCtx(http.MethodDelete, "/tasks/"+created.InsertedID, "")
	first.SetUserValue("id", created.InsertedID)
	h.DeleteTask(first)
	require.Equal(t, http.StatusOK, first.Response.StatusCode())
	assert.JSONEq(t, `{"message":"Task deleted successfully"}`, string(first.Response.Body()))

	second := newRequestCtx(http.MethodDelete, "/tasks/"+created.InsertedID, "")
	second.SetUserValue("id", created.InsertedID)
	h.DeleteTask(second)
	require.Equal(t, http.StatusNotFound, second.Response.StatusCode())
	assert.JSONEq(t, `{"message":"Task not found"}`, string(second.Response.Body()))
}

func TestGetTask_NotFound(t *testing.T) {
	h := newTaskFixture(newMemTaskRepo())
	raw := "68b0c0ffee00112233445566"

	ctx := newRequestCtx(http.MethodGet, "/tasks/"+raw, "")
	ctx.SetUserValue("id", raw)
	h.GetTask(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"message":"Task not found"}`, string(ctx.Response.Body()))
}
