package domain

// DefaultTaskPriority is assigned when a task is created without an
// explicit priority.
const DefaultTaskPriority = 1

// Task is a unit of work tracked by the service. Tasks are not owned by
// any particular user; every authenticated user may read and mutate them.
type Task struct {
	Audit
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// NewTask creates a Task with the given name and priority. A zero
// priority is replaced with DefaultTaskPriority.
// Returns an error if validation fails.
func NewTask(name string, priority int) (*Task, error) {
	if priority == 0 {
		priority = DefaultTaskPriority
	}

	task := &Task{
		Audit:    NewAudit(),
		Name:     name,
		Priority: priority,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks that the Task has valid data.
func (t *Task) Validate() error {
	if t.Name == "" {
		return ErrEmptyTaskName
	}
	return nil
}
