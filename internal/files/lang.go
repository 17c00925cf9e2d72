package files

// Translations returns the messages of this package keyed by language and code.
func Translations() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			CodeFileNotFound:      "File not found",
			CodeUnauthenticated:   "Authentication required",
			CodeFileReadFailed:    "Failed to read file",
			CodeFileDeleteFailed:  "Failed to delete file",
			CodeRegionsFailed:     "Failed to get region information",
			CodeDownloadURLFailed: "Failed to create download URL",
			MsgFileDeleted:        "deleted",
			MsgNoRegions:          "No recognized region information yet",
		},
		"zh": {
			CodeFileNotFound:      "文件不存在",
			CodeUnauthenticated:   "需要身份验证",
			CodeFileReadFailed:    "获取文件失败",
			CodeFileDeleteFailed:  "删除失败",
			CodeRegionsFailed:     "获取区域信息失败",
			CodeDownloadURLFailed: "生成下载链接失败",
			MsgFileDeleted:        "删除成功",
			MsgNoRegions:          "暂无识别区域信息",
		},
	}
}
