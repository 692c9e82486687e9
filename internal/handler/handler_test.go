package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/config"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/repository"
	"github.com/sysu-ecnc-dev/shift-planner/backend/internal/shift"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	repo := repository.NewRepository()
	catalog := shift.NewCatalog(domain.DefaultShiftDefinitions())

	h, err := NewHandler(cfg, repo, catalog)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

func do(t *testing.T, h *Handler, method, path string, body any) Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	// 域内的拒绝也返回 200，只有服务器故障才是 5xx
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp
}

func dataField(t *testing.T, resp Response, field string) string {
	t.Helper()

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	value, ok := data[field].(string)
	require.True(t, ok)

	return value
}

func TestShiftEndpoints(t *testing.T) {
	h := newTestHandler(t)

	resp := do(t, h, http.MethodGet, "/shifts", nil)
	require.True(t, resp.Success)
	assert.Len(t, resp.Data, 4)

	resp = do(t, h, http.MethodPost, "/shifts", map[string]string{"label": "Homeoffice"})
	require.True(t, resp.Success)
	assert.Equal(t, "Homeoffice", dataField(t, resp, "value"))

	// 重复的 label 被拒绝
	resp = do(t, h, http.MethodPost, "/shifts", map[string]string{"label": "Homeoffice"})
	assert.False(t, resp.Success)
	assert.Equal(t, "班次名称已存在", resp.Message)

	resp = do(t, h, http.MethodGet, "/shifts", nil)
	assert.Len(t, resp.Data, 5)
}

func TestMemberEndpoints(t *testing.T) {
	h := newTestHandler(t)

	resp := do(t, h, http.MethodPost, "/members", map[string]string{"name": "Anna"})
	require.True(t, resp.Success)
	annaID := dataField(t, resp, "id")

	resp = do(t, h, http.MethodPost, "/members", map[string]string{"name": "Ben"})
	require.True(t, resp.Success)

	resp = do(t, h, http.MethodPost, "/members", map[string]string{"name": "Anna"})
	assert.False(t, resp.Success)
	assert.Equal(t, "成员姓名已存在", resp.Message)

	// 改名保持 ID 不变
	resp = do(t, h, http.MethodPatch, "/members/"+annaID, map[string]string{"name": "Annika"})
	require.True(t, resp.Success)
	assert.Equal(t, annaID, dataField(t, resp, "id"))
	assert.Equal(t, "Annika", dataField(t, resp, "name"))

	resp = do(t, h, http.MethodPost, "/members/reorder", map[string]int{"from": 0, "to": 1})
	require.True(t, resp.Success)

	resp = do(t, h, http.MethodPost, "/members/reorder", map[string]int{"from": 0, "to": 5})
	assert.False(t, resp.Success)
	assert.Equal(t, "移动位置超出范围", resp.Message)

	resp = do(t, h, http.MethodDelete, "/members/"+annaID, nil)
	require.True(t, resp.Success)

	resp = do(t, h, http.MethodGet, "/members", nil)
	require.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)

	// 已删除的成员
	resp = do(t, h, http.MethodDelete, "/members/"+annaID, nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "成员不存在", resp.Message)
}

func TestScheduleEndpoints(t *testing.T) {
	h := newTestHandler(t)

	resp := do(t, h, http.MethodPost, "/members", map[string]string{"name": "Anna"})
	require.True(t, resp.Success)
	annaID := dataField(t, resp, "id")

	// 2025-01-06 是周一
	resp = do(t, h, http.MethodPut, "/schedule/assignments", map[string]string{
		"date":     "2025-01-06",
		"memberId": annaID,
		"value":    "8-16",
	})
	require.True(t, resp.Success)

	// 同一周内任何一天都归一化到同一个窗口
	resp = do(t, h, http.MethodGet, "/schedule?date=2025-01-08", nil)
	require.True(t, resp.Success)

	var schedule WeekSchedule
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &schedule))

	require.Len(t, schedule.Days, 5)
	assert.Equal(t, "Montag", schedule.Days[0].Label)
	require.Len(t, schedule.Assignments, 1)
	assert.Equal(t, "8-16", schedule.Assignments[0].Value)
	assert.Equal(t, "08:00 bis 16:00", schedule.Assignments[0].Display)

	// offset 翻到下一周后看不到这条记录
	resp = do(t, h, http.MethodGet, "/schedule?date=2025-01-08&offset=1", nil)
	require.True(t, resp.Success)
	raw, err = json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &schedule))
	assert.Empty(t, schedule.Assignments)

	// 未知成员被拒绝
	resp = do(t, h, http.MethodPut, "/schedule/assignments", map[string]string{
		"date":     "2025-01-06",
		"memberId": "6b1e2cf8-0b86-4ad2-9ee4-1cbe092ccfc5",
		"value":    "8-16",
	})
	assert.False(t, resp.Success)
	assert.Equal(t, "成员不存在", resp.Message)

	// 空 value 等价于删除
	resp = do(t, h, http.MethodPut, "/schedule/assignments", map[string]string{
		"date":     "2025-01-06",
		"memberId": annaID,
		"value":    "",
	})
	require.True(t, resp.Success)

	resp = do(t, h, http.MethodGet, "/schedule?date=2025-01-06", nil)
	raw, err = json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &schedule))
	assert.Empty(t, schedule.Assignments)

	// DELETE 对不存在的格子也是无事发生
	resp = do(t, h, http.MethodDelete, "/schedule/assignments?date=2025-01-06&memberId="+annaID, nil)
	assert.True(t, resp.Success)
}
