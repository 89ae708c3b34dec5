package entity

import (
	"github.com/jimyag/jcp/pkg/apierror"
)

// maxUserDataBytes user data 内容上限，与云端限制一致（16 KB）
const maxUserDataBytes = 16 * 1024

// maxPasswordBytes bcrypt 对明文长度的限制
const maxPasswordBytes = 72

// UserData 实例启动配置
// 渲染为 cloud-config 文本后 base64 编码，随 RunInstances 传给云端
type UserData struct {
	Content  string         `json:"content,omitempty"`      // 自定义 user data 内容（设置时忽略其他字段）
	Hostname string         `json:"hostname,omitempty"`     // 主机名
	Timezone string         `json:"timezone,omitempty"`     // 时区（如：Asia/Shanghai）
	Packages []string       `json:"packages,omitempty"`     // 要安装的软件包
	Commands []string       `json:"run_commands,omitempty"` // 首次启动后执行的命令
	Users    []UserDataUser `json:"users,omitempty"`        // 要创建的用户（镜像的默认用户始终保留）
}

// UserDataUser 通过 user data 创建的用户
type UserDataUser struct {
	Name              string   `json:"name"`                          // 用户登录名
	Groups            string   `json:"groups,omitempty"`              // 附加组，逗号分隔
	Shell             string   `json:"shell,omitempty"`               // 登录 Shell
	Sudo              string   `json:"sudo,omitempty"`                // sudo 规则
	Password          string   `json:"password,omitempty"`            // 明文密码，渲染时经 bcrypt 哈希，不会传给云端
	SSHAuthorizedKeys []string `json:"ssh_authorized_keys,omitempty"` // SSH 公钥列表
}

// IsValid 校验启动配置
func (u *UserData) IsValid() error {
	structured := u.Hostname != "" || u.Timezone != "" ||
		len(u.Packages) > 0 || len(u.Commands) > 0 || len(u.Users) > 0
	if u.Content != "" && structured {
		return apierror.WrapError(apierror.ErrInvalidParameterCombination,
			"user_data content may not be combined with other user_data fields", nil)
	}
	if len(u.Content) > maxUserDataBytes {
		return apierror.WrapError(apierror.ErrInvalidParameterValue,
			"user_data content must be at most 16384 bytes", nil)
	}
	for i := range u.Users {
		if u.Users[i].Name == "" {
			return apierror.WrapError(apierror.ErrMissingParameter,
				"user_data users require a name", nil)
		}
		if len(u.Users[i].Password) > maxPasswordBytes {
			return apierror.WrapError(apierror.ErrInvalidParameterValue,
				"user_data passwords must be at most 72 bytes", nil)
		}
	}
	return nil
}
