package userdata

// Config 实例启动配置，用于生成 cloud-config 格式的 user data
type Config struct {
	Hostname string   // 主机名（可选）
	Timezone string   // 时区（如：Asia/Shanghai）
	Users    []User   // 要创建的用户（镜像的默认用户始终保留）
	Packages []string // 要安装的软件包
	Commands []string // 首次启动后执行的命令
}

// User cloud-config 用户配置
type User struct {
	Name              string   `yaml:"name"`                          // 用户登录名
	Gecos             string   `yaml:"gecos,omitempty"`               // 用户全名/描述
	Groups            string   `yaml:"groups,omitempty"`              // 附加组，逗号分隔（如："users,admin"）
	Shell             string   `yaml:"shell,omitempty"`               // 登录 Shell
	Sudo              string   `yaml:"sudo,omitempty"`                // sudo 规则（如："ALL=(ALL) NOPASSWD:ALL"）
	LockPasswd        *bool    `yaml:"lock_passwd,omitempty"`         // 锁定密码登录
	Passwd            string   `yaml:"passwd,omitempty"`              // 密码哈希
	Password          string   `yaml:"-"`                             // 明文密码，Build 时经 bcrypt 哈希写入 Passwd
	SSHAuthorizedKeys []string `yaml:"ssh_authorized_keys,omitempty"` // SSH 公钥列表
}

// cloudConfig 标准的 cloud-config 结构，可直接序列化为 YAML
type cloudConfig struct {
	Hostname string   `yaml:"hostname,omitempty"`
	Timezone string   `yaml:"timezone,omitempty"`
	Users    []any    `yaml:"users,omitempty"`
	Packages []string `yaml:"packages,omitempty"`
	RunCmd   []string `yaml:"runcmd,omitempty"`
}
