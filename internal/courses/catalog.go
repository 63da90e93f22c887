package courses

// seedCatalog is the built-in course list used when no database is
// configured. Skills not covered here fall back to the model.
var seedCatalog = []Course{
	{Skill: "Python", Title: "Python for Everybody", URL: "https://www.youtube.com/watch?v=8DvywoWv6fI"},
	{Skill: "SQL", Title: "SQL Tutorial - Full Database Course", URL: "https://www.youtube.com/watch?v=HXV3zeQKqGY"},
	{Skill: "Machine Learning", Title: "Machine Learning Course", URL: "https://www.youtube.com/watch?v=i_LwzRVP7bg"},
	{Skill: "Statistics", Title: "Statistics - A Full University Course", URL: "https://www.youtube.com/watch?v=xxpc-HPKN28"},
	{Skill: "Deep Learning", Title: "Deep Learning Crash Course", URL: "https://www.youtube.com/watch?v=VyWAvY2CF9c"},
	{Skill: "Data Visualization", Title: "Data Visualization with D3", URL: "https://www.youtube.com/watch?v=_8V5o2UHG0E"},
	{Skill: "JavaScript", Title: "JavaScript Full Course", URL: "https://www.youtube.com/watch?v=PkZNo7MFNFg"},
	{Skill: "React", Title: "React Course - Beginner's Tutorial", URL: "https://www.youtube.com/watch?v=bMknfKXIFA8"},
	{Skill: "Go", Title: "Learn Go Programming", URL: "https://www.youtube.com/watch?v=YS4e4q9oBaU"},
	{Skill: "Docker", Title: "Docker Tutorial for Beginners", URL: "https://www.youtube.com/watch?v=3c-iBn73dDE"},
	{Skill: "Kubernetes", Title: "Kubernetes Course", URL: "https://www.youtube.com/watch?v=X48VuDVv0do"},
	{Skill: "Communication", Title: "Effective Communication Skills", URL: "https://www.youtube.com/watch?v=HAnw168huqA"},
	{Skill: "Project Management", Title: "Project Management Basics", URL: "https://www.youtube.com/watch?v=uWPIsaYpY7U"},
}
