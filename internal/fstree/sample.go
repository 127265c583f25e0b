package fstree

// Sample returns the built-in demonstration tree. It is used whenever no
// tree document is configured, and as a stable fixture in tests.
//
// The tree totals 96,417,000 bytes across 16 files.
func Sample() *Dir {
	return NewRoot(
		NewDir("Documents",
			NewDir("Projects",
				NewFile("project1.docx", 2500000),
				NewFile("project2.docx", 1800000),
				NewFile("notes.txt", 15000),
				NewFile("data.csv", 350000),
			),
			NewDir("Personal",
				NewFile("resume.pdf", 520000),
				NewFile("budget.xlsx", 480000),
				NewDir("Photos",
					NewFile("vacation.jpg", 3500000),
					NewFile("family.jpg", 2800000),
					NewFile("graduation.png", 4200000),
				),
			),
			NewFile("report.pdf", 750000),
		),
		NewDir("Downloads",
			NewFile("program.exe", 15000000),
			NewDir("Library",
				NewFile("book1.pdf", 12000000),
				NewFile("book2.pdf", 9500000),
			),
			NewFile("song.mp3", 8000000),
			NewFile("video.mp4", 35000000),
		),
		NewFile("temp.txt", 2000),
	)
}
