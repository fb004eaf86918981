package adminsdk

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// InviteTokenLength is the length of a hex encoded invite token.
const InviteTokenLength = 64

const (
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Please provide a valid email address"
	msgPasswordRequired = "Password is required"
	msgPasswordShort    = "Password must be at least 6 characters"
	msgPasswordWeak     = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	msgRoleRequired     = "Role is required"
	msgRoleInvalid      = "Role must be ADMIN, MANAGER, or STAFF"
	msgStatusRequired   = "Status is required"
	msgUserStatus       = "Status must be ACTIVE or INACTIVE"
	msgProjectStatus    = "Status must be ACTIVE or ARCHIVED"
	msgTokenRequired    = "Invite token is required"
	msgTokenInvalid     = "Invalid invite token format"
	msgNameRequired     = "Name is required"
	msgNameLength       = "Name must be between 2 and 50 characters"
	msgProjectRequired  = "Project name is required"
	msgProjectLength    = "Project name must be between 2 and 100 characters"
	msgDescriptionLong  = "Description cannot exceed 500 characters"
	msgPage             = "Page must be a positive integer"
	msgLimit            = "Limit must be between 1 and 100"
	msgSearchLong       = "Search query cannot exceed 100 characters"
	msgIncludeDeleted   = "includeDeleted must be true or false"
)

var (
	rePositiveInt = regexp.MustCompile(`^[1-9][0-9]*$`)
	reUpper       = regexp.MustCompile(`[A-Z]`)
	reLower       = regexp.MustCompile(`[a-z]`)
	reDigit       = regexp.MustCompile(`[0-9]`)

	roles           = []any{RoleAdmin, RoleManager, RoleStaff}
	userStatuses    = []any{UserActive, UserInactive}
	projectStatuses = []any{ProjectActive, ProjectArchived}
)

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(msgEmailRequired),
		is.Email.Error(msgEmailInvalid),
	}
}

func (r LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Password,
			validation.Required.Error(msgPasswordRequired),
			validation.RuneLength(6, 0).Error(msgPasswordShort),
		),
	)
}

func (r InviteRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, emailRules()...),
		validation.Field(&r.Role,
			validation.Required.Error(msgRoleRequired),
			validation.In(roles...).Error(msgRoleInvalid),
		),
	)
}

// ValidateInviteToken checks the shape of an invite token.
func ValidateInviteToken(token string) error {
	return validation.Validate(token,
		validation.Required.Error(msgTokenRequired),
		validation.Length(InviteTokenLength, InviteTokenLength).Error(msgTokenInvalid),
	)
}

func (r RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Token,
			validation.Required.Error(msgTokenRequired),
			validation.Length(InviteTokenLength, InviteTokenLength).Error(msgTokenInvalid),
		),
		validation.Field(&r.Name,
			validation.Required.Error(msgNameRequired),
			validation.RuneLength(2, 50).Error(msgNameLength),
		),
		validation.Field(&r.Password,
			validation.Required.Error(msgPasswordRequired),
			validation.RuneLength(6, 0).Error(msgPasswordShort),
			validation.Match(reUpper).Error(msgPasswordWeak),
			validation.Match(reLower).Error(msgPasswordWeak),
			validation.Match(reDigit).Error(msgPasswordWeak),
		),
	)
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required.Error(msgRoleRequired),
			validation.In(roles...).Error(msgRoleInvalid),
		),
	)
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error(msgStatusRequired),
			validation.In(userStatuses...).Error(msgUserStatus),
		),
	)
}

func (r CreateProjectRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error(msgProjectRequired),
			validation.RuneLength(2, 100).Error(msgProjectLength),
		),
		validation.Field(&r.Description,
			validation.RuneLength(0, 500).Error(msgDescriptionLong),
		),
	)
}

func (r UpdateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.By(optionalLength(2, 100, msgProjectLength))),
		validation.Field(&r.Description, validation.By(optionalLength(0, 500, msgDescriptionLong))),
		validation.Field(&r.Status, validation.In(projectStatuses...).Error(msgProjectStatus)),
	)
}

// optionalLength checks the trimmed rune length of a *string that is set.
func optionalLength(min, max int, msg string) validation.RuleFunc {
	return func(value any) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		n := utf8.RuneCountInString(strings.TrimSpace(*s))
		if n < min || n > max {
			return errors.New(msg)
		}
		return nil
	}
}

func limitRule(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 100 {
		return errors.New(msgLimit)
	}
	return nil
}

func (p ListUsersParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Match(rePositiveInt).Error(msgPage)),
		validation.Field(&p.Limit, validation.By(limitRule)),
		validation.Field(&p.Search, validation.RuneLength(0, 100).Error(msgSearchLong)),
		validation.Field(&p.Role, validation.In(roles...).Error(msgRoleInvalid)),
		validation.Field(&p.Status, validation.In(userStatuses...).Error(msgUserStatus)),
	)
}

func (p ListProjectsParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Page, validation.Match(rePositiveInt).Error(msgPage)),
		validation.Field(&p.Limit, validation.By(limitRule)),
		validation.Field(&p.Search, validation.RuneLength(0, 100).Error(msgSearchLong)),
		validation.Field(&p.Status, validation.In(projectStatuses...).Error(msgProjectStatus)),
		validation.Field(&p.IncludeDeleted, validation.In("true", "false").Error(msgIncludeDeleted)),
	)
}
