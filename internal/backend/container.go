package backend

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/planner-miniapp/internal/goal"
	"github.com/saulo-duarte/planner-miniapp/internal/habit"
	"github.com/saulo-duarte/planner-miniapp/internal/notification"
	"github.com/saulo-duarte/planner-miniapp/internal/schedule"
	"github.com/saulo-duarte/planner-miniapp/internal/task"
)

type Container struct {
	Users         UserRepository
	UserHandler   *UserHandler
	Tasks         *Resource[task.Task, task.TaskData, task.TaskPatch]
	Habits        *Resource[habit.Habit, habit.HabitData, habit.HabitPatch]
	Goals         *Resource[goal.Goal, goal.GoalData, goal.GoalPatch]
	Schedules     *Resource[schedule.Schedule, schedule.ScheduleData, schedule.SchedulePatch]
	Notifications *Resource[notification.Setting, notification.SettingData, notification.SettingPatch]
}

func NewContainer(db *gorm.DB) *Container {
	users := NewUserRepository(db)

	c := &Container{
		Users:       users,
		UserHandler: NewUserHandler(users, NewStatisticsRepository(db)),
	}
	c.Tasks = NewResource[task.Task, task.TaskData, task.TaskPatch]("Task", NewRepository[task.Task](db, "task_id"))
	c.Habits = NewResource[habit.Habit, habit.HabitData, habit.HabitPatch]("Habit", NewRepository[habit.Habit](db, "habit_id"))
	c.Goals = NewResource[goal.Goal, goal.GoalData, goal.GoalPatch]("Goal", NewRepository[goal.Goal](db, "goal_id"))
	c.Schedules = NewResource[schedule.Schedule, schedule.ScheduleData, schedule.SchedulePatch](
		"Schedule", NewRepository[schedule.Schedule](db, "schedule_id"))
	c.Notifications = NewResource[notification.Setting, notification.SettingData, notification.SettingPatch](
		"Notification setting", NewRepository[notification.Setting](db, "setting_id"))
	return c
}
