package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/notifications"
)

// SendLessonReminders emails both participants of lessons starting in about
// an hour. Runs every five minutes, so the window is five minutes wide.
func SendLessonReminders() {
	log.Println("Running job: SendLessonReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingLessons []models.Lesson
	err := database.DB.
		Preload("Student.User").
		Preload("Teacher.User").
		Where("lesson_date IS NOT NULL AND lesson_date BETWEEN ? AND ?", lowerBound, upperBound).
		Find(&upcomingLessons).Error
	if err != nil {
		log.Printf("Error checking for upcoming lessons: %v", err)
		return
	}

	for _, lesson := range upcomingLessons {
		meetingLink := ""
		if lesson.MeetingLink != nil {
			meetingLink = *lesson.MeetingLink
		}

		emailSubject := "Reminder: Your Lesson Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Lesson Reminder</h1><p>Hi there,</p><p>Your lesson on %q is scheduled to start at %s.</p><p><b>Meeting Link:</b> <a href='%s'>Join Lesson</a></p>",
			lesson.Topic,
			lesson.LessonDate.Format(time.Kitchen),
			meetingLink,
		)

		go notifications.SendEmail(lesson.Student.User.Name, lesson.Student.User.Email, emailSubject, emailBody)
		go notifications.SendEmail(lesson.Teacher.User.Name, lesson.Teacher.User.Email, emailSubject, emailBody)
	}
}
