package models

import (
	"time"

	"gorm.io/datatypes"
)

const TasksTableName = "tasks"

// Load types
const (
	LoadTypeDirect   = "Direct load"
	LoadTypeIndirect = "Indirect load"
)

// Indirect load sources
const (
	SourceRetailerPortal = "retailer portal"
	SourceRetailerMail   = "retailer mail"
)

// ScheduleLabels is the fixed enumeration of schedule tokens a task may carry.
var ScheduleLabels = []string{
	"Today's load",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
	"Mon - Fri",
	"Mon - Sun",
}

// IsValidScheduleLabel reports whether day is one of the known schedule tokens
func IsValidScheduleLabel(day string) bool {
	for _, label := range ScheduleLabels {
		if day == label {
			return true
		}
	}
	return false
}

// TaskFile maps a downloaded file name to the name required by the load
type TaskFile struct {
	DownloadName string `json:"downloadName"`
	RequiredName string `json:"requiredName"`
}

// DirectLoadTiming is the Direct-load payload: the load window in IST and
// EST plus an optional extraction query. ESTTime is always recomputed
// server-side from ISTTime.
type DirectLoadTiming struct {
	ISTTime  string `json:"istTime"`
	ESTTime  string `json:"estTime"`
	SQLQuery string `json:"sqlQuery,omitempty"`
}

// RetailerPortal holds the portal credentials for an Indirect load
type RetailerPortal struct {
	WebsiteLink string `json:"websiteLink"`
	Username    string `json:"username"`
	Password    string `json:"password"`
}

// RetailerMail holds the mail metadata for an Indirect load
type RetailerMail struct {
	MailFolder string `json:"mailFolder"`
	MailID     string `json:"mailId"`
}

// TaskModel represents a retailer file-load task. Exactly one of the
// load-type payloads (directLoadTiming, retailerPortal, retailerMail) is
// populated, matching LoadType.
type TaskModel struct {
	ID                 uint                                    `gorm:"primaryKey" json:"id"`
	Retailer           string                                  `gorm:"index;not null" json:"retailer"`
	Day                string                                  `gorm:"index" json:"day"`
	LoadType           string                                  `json:"loadType"`
	FileCount          int                                     `json:"fileCount"`
	Formats            datatypes.JSONType[map[string]int]      `gorm:"type:jsonb" json:"formats"`
	IndirectLoadSource string                                  `json:"indirectLoadSource,omitempty"`
	DirectLoadTiming   datatypes.JSONType[*DirectLoadTiming]   `gorm:"type:jsonb" json:"directLoadTiming"`
	RetailerPortal     datatypes.JSONType[*RetailerPortal]     `gorm:"type:jsonb" json:"retailerPortal"`
	RetailerMail       datatypes.JSONType[*RetailerMail]       `gorm:"type:jsonb" json:"retailerMail"`
	Files              datatypes.JSONType[[]TaskFile]          `gorm:"type:jsonb" json:"files"`
	KtRecordingLink    string                                  `json:"ktRecordingLink,omitempty"`
	DocumentationLink  string                                  `json:"documentationLink,omitempty"`
	Instructions       string                                  `json:"instructions,omitempty"`
	Link               string                                  `json:"link,omitempty"`
	Username           string                                  `json:"username,omitempty"`
	Password           string                                  `json:"password,omitempty"`
	Completed          bool                                    `json:"completed"`
	CreatedAt          time.Time                               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time                               `gorm:"autoUpdateTime;index" json:"updatedAt"`
}

func (TaskModel) TableName() string {
	return TasksTableName
}
