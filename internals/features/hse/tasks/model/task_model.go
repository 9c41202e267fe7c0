// file: internals/features/hse/tasks/model/task_model.go
package model

import "strconv"

// Task: item kerja ringan yang menempel ke project legacy.
type Task struct {
	ID                 string   `json:"id"`
	ProjectID          string   `json:"project_id"`
	Code               string   `json:"code"`
	Title              string   `json:"title"`
	ImplementationDate *string  `json:"implementation_date"`
	Frequency          string   `json:"frequency"`
	PicName            *string  `json:"pic_name"`
	PicEmail           *string  `json:"pic_email"`
	Status             string   `json:"status"`
	WptsID             string   `json:"wpts_id,omitempty"`
	Attachments        []string `json:"attachments"`
}

// TaskDocument: seluruh task plus counter id, satu file JSON.
type TaskDocument struct {
	NextID int    `json:"next_id"`
	Tasks  []Task `json:"tasks"`
}

func NewTaskDocument() TaskDocument {
	return TaskDocument{NextID: 1, Tasks: []Task{}}
}

// TakeID mengambil id berikutnya dan menaikkan counter.
func (d *TaskDocument) TakeID() string {
	id := strconv.Itoa(d.NextID)
	d.NextID++
	return id
}

// FindTask mengembalikan index task dengan id tsb, -1 kalau tidak ada.
func (d *TaskDocument) FindTask(id string) int {
	for i := range d.Tasks {
		if d.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}
