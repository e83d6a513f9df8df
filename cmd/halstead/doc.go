// Copyright (c) repo-quality-tool Authors.
// Licensed under the MIT License.

/*
Command halstead 计算单个源文件的 Halstead 度量。

# 用法

	halstead [options] <file>

成功时向标准输出写出一行 JSON：

	{"vocabulary":5,"length":5,"volume":11.61,"difficulty":1.5,"effort":17.41,"file":"a.js"}

未定义的度量输出为 null。缺少文件参数、读取失败或分词失败时，
在标准错误输出 "error: ..." 并以退出码 1 结束。

# 配置

配置按 默认值 → YAML 文件（-config）→ HALSTEAD_* 环境变量 → 命令行参数
的顺序合并。日志默认写到标准错误，不会混入结果输出。
*/
package main
