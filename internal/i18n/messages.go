package i18n

// Message keys.
const (
	MsgAppShort = "app.short"

	MsgLessonRecorded = "lesson.recorded"
	MsgIDRequired     = "lesson.id_required"
	MsgNoRecords      = "records.none"
	MsgNoStudents     = "students.none"
	MsgReadFailed     = "read.failed"

	MsgFound         = "records.found"
	MsgRecordNo      = "records.number"
	MsgMinutesUnit   = "unit.minutes"
	MsgPerHour       = "unit.per_hour"
	MsgRecordsTitle  = "records.title"
	MsgStudentsTitle = "students.title"
	MsgSummaryTitle  = "summary.title"
	MsgMonthlyTitle  = "monthly.title"
	MsgLessonTitle   = "lesson.title"

	ColNo          = "col.no"
	ColDate        = "col.date"
	ColMonth       = "col.month"
	ColStudent     = "col.student"
	ColID          = "col.id"
	ColMinutes     = "col.minutes"
	ColRate        = "col.rate"
	ColIncome      = "col.income"
	ColTopic       = "col.topic"
	ColHomework    = "col.homework"
	ColPerformance = "col.performance"
	ColNotes       = "col.notes"
	ColNextPlan    = "col.next_plan"
	ColLessons     = "col.lessons"
	ColHours       = "col.hours"
	ColTotal       = "col.total"

	MsgTotalIncome  = "summary.income"
	MsgTotalHours   = "summary.hours"
	MsgTotalLessons = "summary.lessons"

	MsgSchemaCreated  = "schema.created"
	MsgSchemaHeader   = "schema.header"
	MsgSchemaUpToDate = "schema.up_to_date"
	MsgSchemaMigrated = "schema.migrated"
	MsgSchemaVersion  = "schema.version"

	MsgExported = "export.done"
	MsgMirrored = "mirror.done"
)

var english = map[string]string{
	MsgAppShort: "Record and review tutoring lessons",

	MsgLessonRecorded: "Lesson recorded for %s (%s) on %s, income %s",
	MsgIDRequired:     "%s is a new student, please pass --id",
	MsgNoRecords:      "No records found.",
	MsgNoStudents:     "No students yet.",
	MsgReadFailed:     "Could not read the ledger, showing no data.",

	MsgFound:         "Found %d record(s):",
	MsgRecordNo:      "Record #%d",
	MsgMinutesUnit:   "%d minutes",
	MsgPerHour:       "%s/hour",
	MsgRecordsTitle:  "Lesson records",
	MsgStudentsTitle: "Students",
	MsgSummaryTitle:  "Financial summary",
	MsgMonthlyTitle:  "Monthly summary",
	MsgLessonTitle:   "Lesson",

	ColNo:          "No.",
	ColDate:        "Date",
	ColMonth:       "Month",
	ColStudent:     "Student",
	ColID:          "ID",
	ColMinutes:     "Minutes",
	ColRate:        "Rate",
	ColIncome:      "Income",
	ColTopic:       "Topic",
	ColHomework:    "Homework",
	ColPerformance: "Performance",
	ColNotes:       "Notes",
	ColNextPlan:    "Next plan",
	ColLessons:     "Lessons",
	ColHours:       "Hours",
	ColTotal:       "Total",

	MsgTotalIncome:  "Total income",
	MsgTotalHours:   "Total hours",
	MsgTotalLessons: "Total lessons",

	MsgSchemaCreated:  "Created %s",
	MsgSchemaHeader:   "Wrote header to empty file %s",
	MsgSchemaUpToDate: "%s is up to date",
	MsgSchemaMigrated: "Migrated %d rows in %s",
	MsgSchemaVersion:  "%s is at schema version %d",

	MsgExported: "Exported %d lessons to %s",
	MsgMirrored: "Mirrored %d lessons to %s",
}

var chinese = map[string]string{
	MsgAppShort: "记录和查看辅导课程",

	MsgLessonRecorded: "已记录 %s（%s）%s 的课程，收入 %s",
	MsgIDRequired:     "%s 是新学生，请使用 --id 指定学号",
	MsgNoRecords:      "没有找到记录。",
	MsgNoStudents:     "还没有学生。",
	MsgReadFailed:     "无法读取记录文件，暂无数据。",

	MsgFound:         "找到 %d 条记录：",
	MsgRecordNo:      "记录 #%d",
	MsgMinutesUnit:   "%d 分钟",
	MsgPerHour:       "%s/小时",
	MsgRecordsTitle:  "课程记录",
	MsgStudentsTitle: "学生列表",
	MsgSummaryTitle:  "财务汇总",
	MsgMonthlyTitle:  "月度汇总",
	MsgLessonTitle:   "课程",

	ColNo:          "序号",
	ColDate:        "日期",
	ColMonth:       "月份",
	ColStudent:     "学生",
	ColID:          "学号",
	ColMinutes:     "时长(分钟)",
	ColRate:        "课时费",
	ColIncome:      "收入",
	ColTopic:       "主题",
	ColHomework:    "作业",
	ColPerformance: "表现",
	ColNotes:       "备注",
	ColNextPlan:    "下次计划",
	ColLessons:     "课程数",
	ColHours:       "小时",
	ColTotal:       "合计",

	MsgTotalIncome:  "总收入",
	MsgTotalHours:   "总课时",
	MsgTotalLessons: "总课程数",

	MsgSchemaCreated:  "已创建 %s",
	MsgSchemaHeader:   "已为空文件 %s 写入表头",
	MsgSchemaUpToDate: "%s 已是最新格式",
	MsgSchemaMigrated: "已迁移 %d 行（%s）",
	MsgSchemaVersion:  "%s 的数据库版本为 %d",

	MsgExported: "已导出 %d 条课程到 %s",
	MsgMirrored: "已同步 %d 条课程到 %s",
}
