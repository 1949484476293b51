package command

import "github.com/Tiliavir/intrack/internal/model"

// Prefix marks the start of an argument in command-line style input.
type Prefix string

func (p Prefix) String() string { return string(p) }

const (
	PrefixCompanyName       Prefix = "/com"
	PrefixLocation          Prefix = "/loc"
	PrefixDescription       Prefix = "/desc"
	PrefixRole              Prefix = "/role"
	PrefixContactName       Prefix = "/cname"
	PrefixContactEmail      Prefix = "/cemail"
	PrefixContactNumber     Prefix = "/cnum"
	PrefixApplicationStatus Prefix = "/status"
	PrefixRemark            Prefix = "/remark"
	PrefixTask              Prefix = "/task"
	PrefixSelectTask        Prefix = "/selecttask"
	PrefixDeadline          Prefix = "/deadline"
)

// FieldPrefixes maps each internship field to its prefix.
var FieldPrefixes = map[model.Field]Prefix{
	model.FieldCompanyName:       PrefixCompanyName,
	model.FieldLocation:          PrefixLocation,
	model.FieldDescription:       PrefixDescription,
	model.FieldRole:              PrefixRole,
	model.FieldContactName:       PrefixContactName,
	model.FieldContactEmail:      PrefixContactEmail,
	model.FieldContactNumber:     PrefixContactNumber,
	model.FieldApplicationStatus: PrefixApplicationStatus,
	model.FieldRemark:            PrefixRemark,
}
