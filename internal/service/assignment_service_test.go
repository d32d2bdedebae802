package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"dormbook/internal/dto"
	"dormbook/internal/model"
	"dormbook/internal/repository"
)

// ── 测试辅助 ──

func setupTestAssignmentService() (AssignmentService, *repository.Repository, *mockRepos) {
	repo, mocks := newMockRepos()
	svc := NewAssignmentService(repo, zap.NewNop())
	return svc, repo, mocks
}

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func createAssignment(t *testing.T, svc AssignmentService, employeeID, bedID uint, status string) *dto.AssignmentResponse {
	t.Helper()
	req := &dto.CreateAssignmentRequest{
		EmployeeID: uintPtr(employeeID),
		BedID:      uintPtr(bedID),
		StartDate:  "2026-09-01",
	}
	if status != "" {
		req.Status = strPtr(status)
	}
	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	return result
}

// ── Create 测试 ──

func TestAssignmentService_Create_OccupiesBed(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)

	result := createAssignment(t, svc, employeeID, bedID, "")

	if result.Status != model.AssignmentStatusActive {
		t.Errorf("期望默认Status=Active，实际=%s", result.Status)
	}
	if result.CreatedBy != "web" {
		t.Errorf("期望默认CreatedBy=web，实际=%s", result.CreatedBy)
	}
	if result.EmployeeCode != "EMP001" {
		t.Errorf("期望EmployeeCode=EMP001，实际=%s", result.EmployeeCode)
	}
	if result.BuildingName != "北苑1号楼" {
		t.Errorf("期望BuildingName=北苑1号楼，实际=%s", result.BuildingName)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusOccupied {
		t.Errorf("创建分配后床位应为Occupied，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Create_PlannedAlsoOccupiesBed(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)

	createAssignment(t, svc, employeeID, bedID, model.AssignmentStatusPlanned)

	if mocks.bed.beds[bedID].Status != model.BedStatusOccupied {
		t.Errorf("Planned分配同样占用床位，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Create_ClosedStillOccupiesBed(t *testing.T) {
	// 直接建成 Closed 的分配也会把床位置为 Occupied，
	// 后续关闭/删除操作才会把它释放回来
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)

	createAssignment(t, svc, employeeID, bedID, model.AssignmentStatusClosed)

	if mocks.bed.beds[bedID].Status != model.BedStatusOccupied {
		t.Errorf("Closed分配创建时仍占用床位，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Create_BadDate(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)

	req := &dto.CreateAssignmentRequest{
		EmployeeID: uintPtr(employeeID),
		BedID:      uintPtr(bedID),
		StartDate:  "01/09/2026",
	}
	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusAvailable {
		t.Errorf("创建失败不应改动床位状态，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

// ── Update 测试 ──

func TestAssignmentService_Update_CloseFreesBed(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	created := createAssignment(t, svc, employeeID, bedID, "")

	result, err := svc.Update(context.Background(), created.AssignmentID, &dto.UpdateAssignmentRequest{
		Status:  strPtr(model.AssignmentStatusClosed),
		EndDate: strPtr("2026-12-31"),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Status != model.AssignmentStatusClosed {
		t.Errorf("期望Status=Closed，实际=%s", result.Status)
	}
	if result.EndDate == nil || *result.EndDate != "2026-12-31" {
		t.Errorf("期望EndDate=2026-12-31，实际=%v", result.EndDate)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusAvailable {
		t.Errorf("关闭唯一分配后床位应释放，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Update_CloseIdempotent(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	created := createAssignment(t, svc, employeeID, bedID, "")

	closeReq := &dto.UpdateAssignmentRequest{Status: strPtr(model.AssignmentStatusClosed)}
	if _, err := svc.Update(context.Background(), created.AssignmentID, closeReq); err != nil {
		t.Fatalf("首次关闭应成功: %v", err)
	}
	if _, err := svc.Update(context.Background(), created.AssignmentID, closeReq); err != nil {
		t.Fatalf("重复关闭应成功: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusAvailable {
		t.Errorf("重复关闭后床位仍应为Available，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Update_CloseKeepsBedWhileOtherLiveAssignmentExists(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	mocks.employee.employees[2] = &model.Employee{
		EmployeeID: 2, EmployeeCode: "EMP002", FirstName: "芳", LastName: "李", Gender: "F", Status: "Active",
	}

	first := createAssignment(t, svc, employeeID, bedID, "")
	second := createAssignment(t, svc, 2, bedID, model.AssignmentStatusPlanned)

	closeReq := &dto.UpdateAssignmentRequest{Status: strPtr(model.AssignmentStatusClosed)}
	if _, err := svc.Update(context.Background(), first.AssignmentID, closeReq); err != nil {
		t.Fatalf("关闭第一条分配应成功: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusOccupied {
		t.Errorf("尚有Planned分配时床位应保持Occupied，实际=%s", mocks.bed.beds[bedID].Status)
	}

	if _, err := svc.Update(context.Background(), second.AssignmentID, closeReq); err != nil {
		t.Fatalf("关闭第二条分配应成功: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusAvailable {
		t.Errorf("全部分配关闭后床位应释放，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Update_OmittedEndDateClearsIt(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)

	req := &dto.CreateAssignmentRequest{
		EmployeeID: uintPtr(employeeID),
		BedID:      uintPtr(bedID),
		StartDate:  "2026-09-01",
		EndDate:    strPtr("2026-12-31"),
	}
	created, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	// 未携带 endDate 的更新清空既有值
	result, err := svc.Update(context.Background(), created.AssignmentID, &dto.UpdateAssignmentRequest{
		Reason: strPtr("调整入住日期"),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.EndDate != nil {
		t.Errorf("未携带endDate时应清空，实际=%v", *result.EndDate)
	}
	if result.Reason == nil || *result.Reason != "调整入住日期" {
		t.Errorf("期望Reason=调整入住日期，实际=%v", result.Reason)
	}
}

func TestAssignmentService_Update_ReasonOnlyKeepsBedOccupied(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	created := createAssignment(t, svc, employeeID, bedID, "")

	_, err := svc.Update(context.Background(), created.AssignmentID, &dto.UpdateAssignmentRequest{
		Reason: strPtr("备注补录"),
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusOccupied {
		t.Errorf("仅改备注不应释放床位，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Update_ReopenDoesNotReoccupyBed(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	created := createAssignment(t, svc, employeeID, bedID, "")

	closeReq := &dto.UpdateAssignmentRequest{Status: strPtr(model.AssignmentStatusClosed)}
	if _, err := svc.Update(context.Background(), created.AssignmentID, closeReq); err != nil {
		t.Fatalf("关闭应成功: %v", err)
	}

	// 写回 Active 不会重新占用床位，床位状态保持 Available
	reopenReq := &dto.UpdateAssignmentRequest{Status: strPtr(model.AssignmentStatusActive)}
	if _, err := svc.Update(context.Background(), created.AssignmentID, reopenReq); err != nil {
		t.Fatalf("重开应成功: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusAvailable {
		t.Errorf("重开分配不重新占用床位，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Update_NotFound(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	seedHierarchy(mocks)

	_, err := svc.Update(context.Background(), 999, &dto.UpdateAssignmentRequest{
		Status: strPtr(model.AssignmentStatusClosed),
	})
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("期望 ErrAssignmentNotFound，实际: %v", err)
	}
}

func TestAssignmentService_Update_BadDate(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	created := createAssignment(t, svc, employeeID, bedID, "")

	_, err := svc.Update(context.Background(), created.AssignmentID, &dto.UpdateAssignmentRequest{
		StartDate: strPtr("2026-13-99"),
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestAssignmentService_Delete_FreesBedAndReturnsBedID(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	created := createAssignment(t, svc, employeeID, bedID, "")

	result, err := svc.Delete(context.Background(), created.AssignmentID)
	if err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if result.BedID != bedID {
		t.Errorf("期望返回BedID=%d，实际=%d", bedID, result.BedID)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusAvailable {
		t.Errorf("删除唯一分配后床位应释放，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Delete_KeepsBedWhileOtherLiveAssignmentExists(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	mocks.employee.employees[2] = &model.Employee{
		EmployeeID: 2, EmployeeCode: "EMP002", FirstName: "芳", LastName: "李", Gender: "F", Status: "Active",
	}
	first := createAssignment(t, svc, employeeID, bedID, "")
	createAssignment(t, svc, 2, bedID, "")

	if _, err := svc.Delete(context.Background(), first.AssignmentID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if mocks.bed.beds[bedID].Status != model.BedStatusOccupied {
		t.Errorf("尚有Active分配时删除不释放床位，实际=%s", mocks.bed.beds[bedID].Status)
	}
}

func TestAssignmentService_Delete_NotFound(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	seedHierarchy(mocks)

	_, err := svc.Delete(context.Background(), 999)
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("期望 ErrAssignmentNotFound，实际: %v", err)
	}
}

// ── List 测试 ──

func TestAssignmentService_List_NewestFirst(t *testing.T) {
	svc, _, mocks := setupTestAssignmentService()
	bedID, employeeID := seedHierarchy(mocks)
	mocks.employee.employees[2] = &model.Employee{
		EmployeeID: 2, EmployeeCode: "EMP002", FirstName: "芳", LastName: "李", Gender: "F", Status: "Active",
	}
	first := createAssignment(t, svc, employeeID, bedID, "")
	second := createAssignment(t, svc, 2, bedID, "")

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望2条记录，实际=%d", len(list))
	}
	if list[0].AssignmentID != second.AssignmentID || list[1].AssignmentID != first.AssignmentID {
		t.Errorf("期望按AssignmentID倒序，实际=[%d, %d]", list[0].AssignmentID, list[1].AssignmentID)
	}
}
