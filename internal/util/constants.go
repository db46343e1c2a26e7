package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"
)

// 上传字段与对象存储前缀
const (
	UploadFieldProblem  = "problemImage"
	UploadFieldSolution = "solutionImage"
	ProblemKeyPrefix    = "problems"
)

// gin 上下文键
const (
	ContextUserKey = "user"
)
