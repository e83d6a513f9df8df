// Copyright (c) repo-quality-tool Authors.
// Licensed under the MIT License.

/*
Package halstead 计算单个源文件的 Halstead 软件科学度量。

# 概述

Computer 调用注入的分词器，按 Policy 将每个词法单元归类为操作符、
操作数或忽略，累计到 Tally 中，最后推导出 Result。计算过程是纯函数：
不做 I/O，不持有跨调用的状态，可并发调用。

# 核心类型

  - Computer — 度量计算器（Compute / ComputeFile / ComputeTokens）
  - Policy   — Kind → Role 的可替换分类策略
  - Tally    — 单次计算内的去重集合与出现次数
  - Result   — vocabulary、length、volume、difficulty、effort 与文件标识
  - Value    — 可缺省的数值，未定义时序列化为 null

# 主要能力

  - vocabulary = n1 + n2，length = N1 + N2
  - volume = N × log2(n)，difficulty = (n1 / 2) × (N2 / max(n2, 1))，effort = volume × difficulty
  - 结果保留两位小数；vocabulary 为 0 时三项均为未定义
  - WithZeroSuppression 复现旧行为：四舍五入后为 0 的值记为未定义
  - 分词错误原样向上传递，不做包装
*/
package halstead
