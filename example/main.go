// Command example demonstrates the two call sites the engine serves:
// dashboard lifecycle counters and a projected calendar feed.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/edulify/coursecal/course"
	"github.com/edulify/coursecal/lifecycle"
	"github.com/edulify/coursecal/schedule"
)

func unixPtr(v int64) *int64 { return &v }

func main() {
	now := time.Now().UTC()
	courses := sampleCourses()

	for _, c := range courses {
		if err := course.ValidateSessions(c); err != nil {
			log.Printf("rejecting schedule of %s: %v", c.ID, err)
		}
	}

	// Dashboard: lifecycle counters, unranged and for last month.
	cl := lifecycle.NewClassifier()
	for _, cat := range []course.Category{course.CategoryInternal, course.CategoryExternal} {
		res := cl.Classify(now, courses, cat, nil)
		fmt.Printf("%-8s  upcoming=%d ongoing=%d planning=%d completed=%d\n",
			cat, len(res.Upcoming), len(res.Ongoing), len(res.Planning), len(res.Completed))
	}

	lastMonth := &course.DateRange{
		Start: now.AddDate(0, -1, 0).Truncate(24 * time.Hour),
		End:   now.Truncate(24 * time.Hour),
	}
	monthly := cl.Classify(now, courses, course.CategoryInternal, lastMonth)
	fmt.Printf("last month (internal): completed=%d ongoing=%d\n",
		len(monthly.Completed), len(monthly.Ongoing))

	// Calendar: project the next weeks and export as an ICS feed.
	p := schedule.NewProjectorWithConfig(schedule.CachedProjectorConfig, nil)
	defer p.Close()

	events := p.Project(now, courses)
	fmt.Printf("projected %d events\n", len(events))
	for _, ev := range events {
		fmt.Printf("  %s  %s\n", ev.Color, ev)
	}

	ics, err := schedule.EventsToICS(events)
	if err != nil {
		log.Fatalf("exporting feed: %v", err)
	}
	fmt.Println(ics)
}

func sampleCourses() []course.Course {
	now := time.Now().UTC()
	lastMonth := now.AddDate(0, -1, 0)

	return []course.Course{
		{
			ID:        "go-101",
			Title:     "Go Fundamentals",
			Category:  course.CategoryInternal,
			Status:    course.ParseStatus("ongoing"),
			StartUnix: unixPtr(lastMonth.Unix()),
			Sessions: []course.WeeklySession{
				{Day: "Monday", Start: "09:00", End: "10:30"},
				{Day: "Monday", Start: "14:00", End: "15:30"},
				{Day: "Thursday", Start: "09:00", End: "10:30"},
			},
		},
		{
			ID:        "sql-201",
			Title:     "Advanced SQL",
			Category:  course.CategoryInternal,
			Status:    course.ParseStatus("draft"),
			StartDate: now.AddDate(0, 2, 0).Format("2006-01-02"),
		},
		{
			ID:        "lms-cloud",
			Title:     "Cloud Architecture (LMS)",
			Category:  course.CategoryExternal,
			StartDate: lastMonth.Format("2006-01-02"),
			EndDate:   now.AddDate(0, 3, 0).Format("2006-01-02"),
			Sessions: []course.WeeklySession{
				{Day: "Wednesday", Start: "18:00", End: "20:00"},
			},
		},
		{
			ID:        "lms-retro",
			Title:     "Legacy Systems (LMS)",
			Category:  course.CategoryExternal,
			StartDate: now.AddDate(0, -6, 0).Format("2006-01-02"),
			EndDate:   now.AddDate(0, -2, 0).Format("2006-01-02"),
		},
	}
}
