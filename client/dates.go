package client

import "time"

const dateLayout = "2006-01-02"

func currentDate() string {
	return time.Now().Format(dateLayout)
}

func startOfCurrentMonth() string {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
}

func endOfCurrentMonth() string {
	now := time.Now()
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Format(dateLayout)
}

func monthsFromNow(months int) string {
	return time.Now().AddDate(0, months, 0).Format(dateLayout)
}

func daysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(dateLayout)
}
