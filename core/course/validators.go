package course

import (
	"github.com/trezcool/courseadmin/core"
)

const MsgFieldsRequired = "All fields are required."

func (nc NewCourse) Validate() error {
	return core.CheckStruct(nc, MsgFieldsRequired)
}

func (uc UpdateCourse) Validate() error {
	return core.CheckStruct(uc, MsgFieldsRequired)
}
