package handler

import (
	"encoding/csv"
	"fmt"
	"time"

	"github.com/singhalaadi/taskly-capstone-project/internal/middleware"
	"github.com/singhalaadi/taskly-capstone-project/internal/models"
	"github.com/singhalaadi/taskly-capstone-project/internal/store"
	"github.com/singhalaadi/taskly-capstone-project/internal/taskquery"
	"github.com/singhalaadi/taskly-capstone-project/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler downloads the current user's tasks as CSV or XLSX. The
// same status/orderBy params as the list view apply, through the same
// query engine, so a download always matches what the list shows.
type ExportHandler struct {
	Tasks *store.TaskStore
}

func NewExportHandler(tasks *store.TaskStore) *ExportHandler {
	return &ExportHandler{Tasks: tasks}
}

var exportHeaders = []string{"Title", "Description", "Priority", "Status", "Due Date", "Created At"}

func exportRow(t *models.Task) []string {
	status := "Open"
	if t.Completed {
		status = "Done"
	}
	return []string{
		t.Title,
		t.Description,
		t.Priority,
		status,
		util.FormatISTPtr(t.DueDate),
		util.FormatIST(t.CreatedAt),
	}
}

func (h *ExportHandler) derivedTasks(c *gin.Context) ([]models.Task, error) {
	identity := middleware.CurrentIdentity(c)
	tasks, err := h.Tasks.ListByOwner(identity.ID)
	if err != nil {
		return nil, err
	}
	return taskquery.Sort(taskquery.Filter(tasks, c.Query("status")), c.Query("orderBy")), nil
}

// ExportCSV streams the task list as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tasks, err := h.derivedTasks(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"tasks_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range tasks {
		writer.Write(exportRow(&tasks[i]))
	}
}

// ExportXLSX builds a spreadsheet of the task list.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	tasks, err := h.derivedTasks(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Tasks"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		_ = c.Error(err)
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, hd := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, hd)
	}

	for idx := range tasks {
		row := idx + 2
		for col, val := range exportRow(&tasks[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 40)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "F", 22)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"tasks_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
