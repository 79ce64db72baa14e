package notification

type ItemType string

const (
	ItemTypeTask     ItemType = "task"
	ItemTypeSchedule ItemType = "schedule"
)

var AllItemTypes = []ItemType{
	ItemTypeTask,
	ItemTypeSchedule,
}

func (t ItemType) IsValid() bool {
	for _, v := range AllItemTypes {
		if t == v {
			return true
		}
	}
	return false
}
