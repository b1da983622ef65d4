package config

type WorkerKeyStruct struct {
	PersistBlogViewsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	PersistBlogViewsQueue: "persist_blog_views_queue",
}
