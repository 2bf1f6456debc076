package config

import (
	"fmt"
	"math"

	"multisig-decoder-sol/internal/consts"
	"multisig-decoder-sol/internal/logic/core"
	"multisig-decoder-sol/pkg/logger"
)

type LogConfig struct {
	Format   string `json:",default=console,options=console|json"` // 日志格式
	LogDir   string `json:",optional"`                              // 日志目录（为空则只输出 stdout）
	Level    string `json:",default=info,options=debug|info|warn|error"`
	Compress bool   `json:",optional"` // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// Network 表示一个 Solana 集群及其上部署的 multisig 程序
type Network struct {
	Label                    string `json:"label"`
	URL                      string `json:"url"`
	ExplorerClusterSuffix    string `json:"explorerClusterSuffix,optional"`
	MultisigProgramID        string `json:"multisigProgramId"`
	MultisigUpgradeAuthority string `json:"multisigUpgradeAuthority,optional"`
}

// ExplorerAccountURL 构造区块浏览器中账户页面的链接
func (n *Network) ExplorerAccountURL(address string) string {
	url := "https://explorer.solana.com/address/" + address
	if n.ExplorerClusterSuffix != "" {
		url += "?cluster=" + n.ExplorerClusterSuffix
	}
	return url
}

// DefaultNetworks 为内置集群表，配置文件未提供 Networks 时使用
func DefaultNetworks() map[string]Network {
	return map[string]Network{
		"mainnet": {
			Label:                    "Mainnet Beta",
			URL:                      "https://solana-api.projectserum.com",
			MultisigProgramID:        consts.MultisigProgramMainnetStr,
			MultisigUpgradeAuthority: consts.MultisigUpgradeAuthorityMainnetStr,
		},
		"devnet": {
			Label:                    "Devnet",
			URL:                      "https://api.devnet.solana.com",
			ExplorerClusterSuffix:    "devnet",
			MultisigProgramID:        consts.MultisigProgramDevnetStr,
			MultisigUpgradeAuthority: consts.MultisigUpgradeAuthorityDevnetStr,
		},
		"localhost": {
			Label:                 "Localhost",
			URL:                   "http://localhost:8899",
			ExplorerClusterSuffix: "localhost",
			MultisigProgramID:     consts.MultisigProgramLocalStr,
		},
	}
}

// MintLookupConfig 控制 mint 元数据查询（唯一会发起网络请求的部分）
type MintLookupConfig struct {
	Enabled     bool   `json:",optional"`
	TimeoutMs   int    `json:",default=5000"`
	RedisAddr   string `json:",optional"` // 为空则不使用缓存
	CacheTTLSec int    `json:",default=86400"`
}

// Config 是 ixdecode 的主配置
type Config struct {
	Logger       LogConfig          `json:"logger,optional"`
	Network      string             `json:",default=mainnet"`
	Networks     map[string]Network `json:",optional"`
	DecimalScale []int              `json:",optional"` // 输入未提供 scale 时使用，缺省为 {6,6,6,6}
	MintLookup   MintLookupConfig   `json:",optional"`
}

// CurrentNetwork 返回当前选中的集群
func (c *Config) CurrentNetwork() (Network, error) {
	networks := c.Networks
	if len(networks) == 0 {
		networks = DefaultNetworks()
	}
	n, ok := networks[c.Network]
	if !ok {
		return Network{}, fmt.Errorf("unknown network %q", c.Network)
	}
	return n, nil
}

// DefaultScale 返回配置的默认精度，已补齐到 4 个位置
// 超出 uint8 范围的值按缺省精度处理
func (c *Config) DefaultScale() core.DecimalScale {
	scale := core.DefaultDecimalScale()
	for i, v := range c.DecimalScale {
		if i >= len(scale) {
			break
		}
		if v >= 0 && v <= math.MaxUint8 {
			scale[i] = uint8(v)
		}
	}
	return scale
}
