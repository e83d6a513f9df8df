// Package config 提供配置管理功能。
//
// 支持从默认值、YAML 文件和环境变量（HALSTEAD_ 前缀）加载配置，
// 并将计算相关配置转换为 halstead 计算选项。
package config
