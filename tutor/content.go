package tutor

// DefaultRegistry builds the tutorial's lesson set in presentation order.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(welcomeLesson, selectLesson, filterLesson)
}

var welcomeLesson = Lesson{
	Name: "Welcome",
	Slug: "welcome",
	HR:   true,
	Intro: `# Welcome to the SQL Tutorial App
This app will guide you through various SQL tasks and concepts.
Use the sidebar to navigate through different tasks.

## What is a Relational Database?

A relational database is a type of database that stores data in tables, which are structured in rows and columns.
Each table represents a different entity, and relationships can be established between tables using keys.
You can think about it like an Excel spreadsheet, where each sheet is a table, and you can link data across sheets.
Each spreadsheet can have multiple rows and columns.
Example tables in a relational database might include ` + "`Employees`, `Departments`, and `Jobs`" + `.
`,
	Tables: HRTables,
}

var selectLesson = Lesson{
	Name:   "Lesson 1: SELECT Query",
	Slug:   "lesson-1",
	HR:     true,
	Editor: true,
	Intro: `In this lesson, you will learn how to write a basic SQL query to select data from a table.
The following SQL query retrieves all records from the ` + "`users`" + ` table:
` + "```sql\nSELECT * FROM users;\n```" + `
Use the SQL editor below to write your query.
`,
	Task: &Task{
		Title:     "Task 1: Write a SELECT Query",
		Prompt:    "Write a SQL query to select all columns from the `Employees` table.\n",
		Reference: "SELECT * FROM Employees",
		Ordered:   true,
	},
}

var filterLesson = Lesson{
	Name:   "Lesson 2: Filtering and Ordering",
	Slug:   "lesson-2",
	Editor: true,
	Intro: `A ` + "`WHERE`" + ` clause keeps only the rows that match a condition, and
` + "`ORDER BY`" + ` controls the order rows come back in:
` + "```sql\nSELECT name, age FROM users WHERE age > 20 ORDER BY age;\n```" + `
Try it on the ` + "`users`" + ` table below.
`,
	Tables: []string{"users"},
	Task: &Task{
		Title: "Task 2: Select and Sort",
		Prompt: "Write a SQL query that returns the `name` and `age` of every user.\n" +
			"Any row order is accepted.\n",
		Reference: "SELECT name, age FROM users ORDER BY age ASC",
		Ordered:   false,
	},
}
